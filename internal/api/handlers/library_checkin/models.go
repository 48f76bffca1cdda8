package library_checkin

// ScanRequest содержимое отсканированной QR-этикетки
type ScanRequest struct {
	Token string `json:"token"`
}
