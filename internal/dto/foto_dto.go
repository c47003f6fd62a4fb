package dto

// FotoResponse describes a stored user photo right after upload.
type FotoResponse struct {
	OriginalName string `json:"originalName"`
	FileName     string `json:"fileName"`
	Size         int64  `json:"size"`
	Type         string `json:"type"`
	UploadedAt   string `json:"uploadedAt"`
	URL          string `json:"url"`
}
