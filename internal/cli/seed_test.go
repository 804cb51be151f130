package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/storefront/internal/mocks"
	"github.com/dtroode/storefront/internal/model"
	"github.com/dtroode/storefront/internal/testutil"
)

func TestLoadSeedFile(t *testing.T) {
	file, err := loadSeedFile("testdata/catalog.yaml")
	require.NoError(t, err)

	assert.Equal(t, SeedFile{Products: []SeedProduct{
		{Name: "lamp", Price: 25, Image: "lamp.png"},
		{Name: "desk", Price: 120},
	}}, file)
}

func TestLoadSeedFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "malformed", content: "products: [", wantErr: "failed to parse seed file"},
		{name: "empty name", content: "products:\n  - price: 1\n", wantErr: "product 1: name must be between 1 and 20"},
		{name: "long name", content: "products:\n  - name: abcdefghijklmnopqrstu\n", wantErr: "product 1: name must be between 1 and 20"},
		{name: "negative price", content: "products:\n  - name: lamp\n    price: -1\n", wantErr: "product 1: price must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "seed.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := loadSeedFile(path)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}

	_, err := loadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read seed file")
}

func TestSeeder_Seed(t *testing.T) {
	file, err := loadSeedFile("testdata/catalog.yaml")
	require.NoError(t, err)

	products := mocks.NewProductStore(t)
	products.On("Create", mock.Anything, model.Product{Name: "lamp", Price: 25}).
		Return(model.Product{ID: 1, Name: "lamp", Price: 25}, nil).Once()
	products.On("Create", mock.Anything, model.Product{Name: "desk", Price: 120}).
		Return(model.Product{ID: 2, Name: "desk", Price: 120}, nil).Once()

	storage := mocks.NewStorage(t)
	storage.On("Upload", mock.Anything, "products/1", mock.Anything, "image/png").Return(nil).Once()

	tx := &testutil.Transactor{Stores: testutil.Stores{ProductStore: products}}
	var out bytes.Buffer
	s := &seeder{transactor: tx, storage: storage, baseDir: "testdata", out: &out, logger: testutil.MakeNoopLogger()}

	require.NoError(t, s.seed(context.Background(), file))
	assert.Equal(t, 1, tx.Calls)
	newGoldie(t).Assert(t, "seed_report", out.Bytes())
}

func TestSeeder_Seed_WithoutStorage(t *testing.T) {
	products := mocks.NewProductStore(t)
	products.On("Create", mock.Anything, mock.Anything).Return(model.Product{ID: 1, Name: "lamp", Price: 25}, nil)

	tx := &testutil.Transactor{Stores: testutil.Stores{ProductStore: products}}
	var out bytes.Buffer
	s := &seeder{transactor: tx, baseDir: "testdata", out: &out, logger: testutil.MakeNoopLogger()}

	err := s.seed(context.Background(), SeedFile{Products: []SeedProduct{{Name: "lamp", Price: 25, Image: "lamp.png"}}})
	require.NoError(t, err)
	assert.Equal(t, "product 1 lamp 25\n", out.String())
}

func TestSeeder_Seed_CreateFails(t *testing.T) {
	products := mocks.NewProductStore(t)
	products.On("Create", mock.Anything, mock.Anything).Return(model.Product{}, errors.New("connection reset"))

	tx := &testutil.Transactor{Stores: testutil.Stores{ProductStore: products}}
	var out bytes.Buffer
	s := &seeder{transactor: tx, storage: mocks.NewStorage(t), out: &out, logger: testutil.MakeNoopLogger()}

	err := s.seed(context.Background(), SeedFile{Products: []SeedProduct{{Name: "lamp"}}})
	assert.ErrorContains(t, err, `failed to create product "lamp"`)
	assert.Empty(t, out.String())
}
