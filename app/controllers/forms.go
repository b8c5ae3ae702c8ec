package controllers

// The url-encoded form shapes the controllers bind against. Every field
// is a string: validation runs on the raw input, and the controllers
// convert to storage types only after it passes, so a malformed number
// is a field error rather than a bind failure.

type ProductForm struct {
	Name     string `form:"name" validate:"required,max=255"`
	Slug     string `form:"slug" validate:"nullable,alpha_dash,max=255"`
	Price    string `form:"price" validate:"required,numeric,gte=0"`
	Quantity string `form:"quantity" validate:"required,integer,gte=0"`
}

type CustomerForm struct {
	Name           string `form:"name" validate:"required,max=255"`
	Email          string `form:"email" validate:"required,email,max=255"`
	Phone          string `form:"phone" validate:"nullable,max=255"`
	BillingAddress string `form:"billing_address" validate:"nullable,max=255"`
}

type RegisterForm struct {
	FirstName            string `form:"first_name" validate:"required,max=255"`
	Email                string `form:"email" validate:"required,email,max=255"`
	Password             string `form:"password" validate:"required,min=8"`
	PasswordConfirmation string `form:"password_confirmation" validate:"required,confirmed"`
}

type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

type EmailForm struct {
	Subject   string `form:"subject" validate:"required,max=255"`
	Message   string `form:"message" validate:"required"`
	FromEmail string `form:"from_email" validate:"required,email"`
	To        string `form:"to" validate:"required,email"`
}
