// internal/domain/models/favoriteaddress.go
package models

// FavoriteAddressInfo is the flat fold of a parent's favorite addresses, one
// field per channel. Channels without a favorite are empty strings. FavWeb is
// part of the aggregate but is not stored back on Person/Org, which only
// carry the six postal/contact fields.
type FavoriteAddressInfo struct {
	FavEmail   string `json:"fav_email"`
	FavPhone   string `json:"fav_phone"`
	FavStreet  string `json:"fav_street"`
	FavZip     string `json:"fav_zip"`
	FavCity    string `json:"fav_city"`
	FavCountry string `json:"fav_country"`
	FavWeb     string `json:"fav_web"`
}
