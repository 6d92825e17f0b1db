package entity

// MaxInquiryPhotos bounds the photo attachments on a sell/exchange inquiry.
const MaxInquiryPhotos = 4

type Inquiry struct {
	ID          ID        `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email,omitempty"`
	ItemType    string    `json:"item_type"`
	Description string    `json:"description,omitempty"`
	Photos      ImageList `json:"photos,omitempty"`
}
