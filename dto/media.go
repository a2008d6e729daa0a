package dto

type MediaUploadResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Src  string `json:"src"`
	Type string `json:"type"`
}
