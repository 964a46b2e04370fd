package api

import (
	"github.com/alexisbeaulieu97/storefront/internal/state"
)

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	ExpiresInMins int    `json:"expiresInMins,omitempty"`
}

// User is a gateway user profile.
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender"`
	Image     string `json:"image"`
}

// Profile converts the gateway user into the session's profile type.
func (u User) Profile() state.UserProfile {
	return state.UserProfile{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Gender:    u.Gender,
		Image:     u.Image,
	}
}

// LoginResponse carries the profile and the issued credential.
type LoginResponse struct {
	User
	Token        string `json:"token"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Credential returns the issued token, preferring "token" over "accessToken".
func (r LoginResponse) Credential() string {
	if r.Token != "" {
		return r.Token
	}
	return r.AccessToken
}

// Review is a customer review attached to a product.
type Review struct {
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
	Date          string `json:"date"`
	ReviewerName  string `json:"reviewerName"`
	ReviewerEmail string `json:"reviewerEmail"`
}

// Dimensions of a product in centimetres.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

// Product is a catalogue item.
type Product struct {
	ID                   int        `json:"id"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	Category             string     `json:"category"`
	Price                float64    `json:"price"`
	DiscountPercentage   float64    `json:"discountPercentage"`
	Rating               float64    `json:"rating"`
	Stock                int        `json:"stock"`
	Tags                 []string   `json:"tags"`
	Brand                string     `json:"brand,omitempty"`
	SKU                  string     `json:"sku"`
	Weight               float64    `json:"weight"`
	Dimensions           Dimensions `json:"dimensions"`
	WarrantyInformation  string     `json:"warrantyInformation"`
	ShippingInformation  string     `json:"shippingInformation"`
	AvailabilityStatus   string     `json:"availabilityStatus"`
	ReturnPolicy         string     `json:"returnPolicy"`
	MinimumOrderQuantity int        `json:"minimumOrderQuantity"`
	Thumbnail            string     `json:"thumbnail"`
	Images               []string   `json:"images"`
	Reviews              []Review   `json:"reviews"`
}

// InStock reports whether any units are available.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// ProductPage is one page of a product listing.
type ProductPage struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Skip     int       `json:"skip"`
	Limit    int       `json:"limit"`
}

// Category is a product category.
type Category struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

type errorBody struct {
	Message string `json:"message"`
}
