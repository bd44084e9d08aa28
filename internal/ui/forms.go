package ui

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/linkvault/internal/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// FormError is a validation failure shown next to the form.
type FormError struct {
	Field   string
	Message string
}

func (e *FormError) Error() string {
	return e.Message
}

// check validates form and maps the first failing "Field.tag" to a message.
func check(form any, messages map[string]string, fallback string) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return &FormError{Message: fallback}
	}
	fe := errs[0]
	if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		return &FormError{Field: fe.Field(), Message: msg}
	}
	return &FormError{Field: fe.Field(), Message: fallback}
}

// LoginForm collects credentials.
type LoginForm struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// Validate requires every field.
func (f LoginForm) Validate() error {
	f.Email = strings.TrimSpace(f.Email)
	return check(f, nil, "Please fill in all fields")
}

// Request converts the form into an API request.
func (f LoginForm) Request() models.LoginRequest {
	return models.LoginRequest{Email: strings.TrimSpace(f.Email), Password: f.Password}
}

// RegisterForm collects a new account. ConfirmPassword must repeat Password.
type RegisterForm struct {
	Username        string `validate:"required"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

var registerFormMessages = map[string]string{
	"Email.email":             "Invalid email address",
	"Password.min":            "Password must be at least 6 characters",
	"ConfirmPassword.eqfield": "Passwords do not match",
}

// Validate checks presence, the password confirmation and the minimum length.
func (f RegisterForm) Validate() error {
	f.Username = strings.TrimSpace(f.Username)
	f.Email = strings.TrimSpace(f.Email)
	return check(f, registerFormMessages, "Please fill in all fields")
}

// Request converts the form into an API request.
func (f RegisterForm) Request() models.RegisterRequest {
	return models.RegisterRequest{
		Username: strings.TrimSpace(f.Username),
		Email:    strings.TrimSpace(f.Email),
		Password: f.Password,
	}
}

// LinkForm is the create/edit form of a link. An empty CategoryID means
// uncategorized.
type LinkForm struct {
	Title       string `validate:"required"`
	URL         string `validate:"required,url"`
	Description string
	CategoryID  string `validate:"omitempty,uuid"`
}

var linkFormMessages = map[string]string{
	"Title.required":  "Please enter a title",
	"URL.required":    "Please enter a URL",
	"URL.url":         "Please enter a valid URL (including http:// or https://)",
	"CategoryID.uuid": "Unknown category",
}

// LinkFormFrom pre-fills the edit form from an existing link.
func LinkFormFrom(l models.LinkDB) LinkForm {
	f := LinkForm{Title: l.Title, URL: l.URL}
	if l.Description != nil {
		f.Description = *l.Description
	}
	if l.CategoryID.Valid {
		f.CategoryID = l.CategoryID.UUID.String()
	}
	return f
}

// Validate checks the title, the URL and the category id.
func (f LinkForm) Validate() error {
	f.Title = strings.TrimSpace(f.Title)
	f.URL = strings.TrimSpace(f.URL)
	f.CategoryID = strings.TrimSpace(f.CategoryID)
	return check(f, linkFormMessages, "Invalid link")
}

// Request converts the form into an API request. Empty optional fields are
// sent as absent so an update clears them.
func (f LinkForm) Request() models.LinkRequest {
	req := models.LinkRequest{
		Title: strings.TrimSpace(f.Title),
		URL:   strings.TrimSpace(f.URL),
	}
	if d := strings.TrimSpace(f.Description); d != "" {
		req.Description = &d
	}
	if id := strings.TrimSpace(f.CategoryID); id != "" {
		req.CategoryID = &id
	}
	return req
}

// CategoryForm is the create/edit form of a category. An empty Color means
// the default.
type CategoryForm struct {
	Name  string `validate:"required,max=100"`
	Color string `validate:"omitempty,hexcolor"`
}

var categoryFormMessages = map[string]string{
	"Name.required":  "Please enter a category name",
	"Name.max":       "Category name is too long",
	"Color.hexcolor": "Color must be a hex color such as #3b82f6",
}

// Palette is the set of colors offered when creating a category.
var Palette = []string{
	"#e3dacc",
	"#bcd1ca",
	"#cbcadb",
	"#6a9bcc",
	"#788c5d",
	"#c46686",
	"#bfc0bb",
}

// Validate checks the name and the color.
func (f CategoryForm) Validate() error {
	f.Name = strings.TrimSpace(f.Name)
	f.Color = strings.TrimSpace(f.Color)
	return check(f, categoryFormMessages, "Invalid category")
}

// Request converts the form into an API request.
func (f CategoryForm) Request() models.CategoryRequest {
	return models.CategoryRequest{
		Name:  strings.TrimSpace(f.Name),
		Color: strings.TrimSpace(f.Color),
	}
}
