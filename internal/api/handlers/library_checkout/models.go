package library_checkout

// ScanRequest содержимое отсканированной QR-этикетки
type ScanRequest struct {
	Token string `json:"token"`
}
