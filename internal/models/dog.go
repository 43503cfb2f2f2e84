package models

// Dog mirrors the dog records owned by the remote API.
type Dog struct {
	ID        int64  `json:"id"`
	Name      string `json:"name_dog"`
	Breed     string `json:"breed"`
	BirthDate string `json:"birth_date"` // YYYY-MM-DD
	Weight    string `json:"weight"`
	Sex       string `json:"sex"`
	UserID    int64  `json:"user_id"`
}

// DogPhoto is one uploaded photo of a dog. The file itself lives behind
// the API's media host; only the name travels here.
type DogPhoto struct {
	ID        int64  `json:"id"`
	PhotoName string `json:"photo_name_dog"`
	DogID     int64  `json:"dog_id"`
}
