package model

// Routes the operations redirect to.
const (
	RouteSignIn   = "/sign_in"
	RouteSignUp   = "/sign_up"
	RouteProducts = "/products"
	RouteCart     = "/cart"
)

// View names a rendered page.
type View string

const (
	ViewSignUp       View = "sign_up"
	ViewSignIn       View = "sign_in"
	ViewProducts     View = "products"
	ViewProduct      View = "product"
	ViewProductImage View = "product_image"
	ViewCart         View = "cart"
	ViewPurchased    View = "purchased"
	ViewTransactions View = "transactions"
	ViewError        View = "error"
)

// ResultKind tells the transport how to answer.
type ResultKind int

const (
	ResultRender ResultKind = iota + 1
	ResultRedirect
)

// Result is the outcome of an operation: either a redirect or a rendered view.
// Err carries a form-level error shown together with the view.
type Result struct {
	Kind     ResultKind
	Location string
	View     View
	Data     any
	Err      error
}

// Redirect returns a redirect outcome.
func Redirect(location string) Result {
	return Result{Kind: ResultRedirect, Location: location}
}

// Render returns a view outcome.
func Render(view View, data any) Result {
	return Result{Kind: ResultRender, View: view, Data: data}
}

// WithError attaches a form-level error to the outcome.
func (r Result) WithError(err error) Result {
	r.Err = err
	return r
}

// IsRedirectTo reports whether r redirects to location.
func (r Result) IsRedirectTo(location string) bool {
	return r.Kind == ResultRedirect && r.Location == location
}

// FormPage is the payload of the sign-up and sign-in views.
type FormPage struct {
	Form any `json:"form"`
}

// ProductsPage is the payload of the products view.
type ProductsPage struct {
	Products []Product `json:"products"`
}

// ProductPage is the payload of the product detail view.
type ProductPage struct {
	Product Product `json:"product"`
	InCart  bool    `json:"in_cart"`
}

// CartPage is the payload of the cart view.
type CartPage struct {
	Products []Product `json:"products"`
}

// PurchasePage is the payload of the purchase confirmation.
type PurchasePage struct {
	Product     Product             `json:"product"`
	Transaction PurchaseTransaction `json:"transaction"`
}

// TransactionsPage is the payload of the transactions view.
type TransactionsPage struct {
	Transactions []PurchaseTransaction `json:"transactions"`
}
