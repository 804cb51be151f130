package cli

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dtroode/storefront/internal/logger"
	"github.com/dtroode/storefront/internal/model"
	"github.com/dtroode/storefront/internal/service"
)

const maxProductNameLength = 20

// SeedFile is the catalog description read by the seed command.
type SeedFile struct {
	Products []SeedProduct `yaml:"products"`
}

// SeedProduct is one catalog entry. Image is a path relative to the seed
// file.
type SeedProduct struct {
	Name        string `yaml:"name"`
	Price       int64  `yaml:"price"`
	Image       string `yaml:"image,omitempty"`
	ContentType string `yaml:"content_type,omitempty"`
}

// NewSeedCommand creates the seed command.
func NewSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file.yaml>",
		Short: "Insert catalog products from a YAML file",
		Long: `Insert catalog products from a YAML file.

Products are inserted in one transaction. Images are uploaded afterwards
when object storage is enabled and skipped otherwise.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := loadSeedFile(args[0])
			if err != nil {
				return err
			}

			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			s := &seeder{
				transactor: a.conn,
				storage:    a.storage,
				baseDir:    filepath.Dir(args[0]),
				out:        cmd.OutOrStdout(),
				logger:     a.logger,
			}
			return s.seed(cmd.Context(), file)
		},
	}
}

func loadSeedFile(path string) (SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SeedFile{}, fmt.Errorf("failed to read seed file: %w", err)
	}

	var file SeedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return SeedFile{}, fmt.Errorf("failed to parse seed file: %w", err)
	}

	for i, p := range file.Products {
		if p.Name == "" || utf8.RuneCountInString(p.Name) > maxProductNameLength {
			return SeedFile{}, fmt.Errorf("product %d: name must be between 1 and %d characters long", i+1, maxProductNameLength)
		}
		if p.Price < 0 {
			return SeedFile{}, fmt.Errorf("product %d: price must not be negative", i+1)
		}
	}

	return file, nil
}

type seeder struct {
	transactor model.Transactor
	storage    model.Storage
	baseDir    string
	out        io.Writer
	logger     *logger.Logger
}

func (s *seeder) seed(ctx context.Context, file SeedFile) error {
	created := make([]model.Product, 0, len(file.Products))

	err := s.transactor.WithinTx(ctx, func(ctx context.Context, stores model.Stores) error {
		for _, p := range file.Products {
			product, err := stores.Products().Create(ctx, model.Product{Name: p.Name, Price: p.Price})
			if err != nil {
				return fmt.Errorf("failed to create product %q: %w", p.Name, err)
			}
			created = append(created, product)
		}
		return nil
	})
	if err != nil {
		return err
	}

	for i, product := range created {
		fmt.Fprintf(s.out, "product %d %s %d\n", product.ID, product.Name, product.Price)

		image := file.Products[i].Image
		if image == "" {
			continue
		}
		if s.storage == nil {
			s.logger.Warn("Seed: object storage disabled, skipping image",
				"product_id", product.ID,
				"image", image)
			continue
		}
		if err := s.uploadImage(ctx, product.ID, image, file.Products[i].ContentType); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "image %s\n", service.ProductImageKey(product.ID))
	}

	return nil
}

func (s *seeder) uploadImage(ctx context.Context, productID int64, image, contentType string) error {
	path := image
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.baseDir, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(path))
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := s.storage.Upload(ctx, service.ProductImageKey(productID), f, contentType); err != nil {
		return fmt.Errorf("failed to upload image of product %d: %w", productID, err)
	}

	return nil
}
