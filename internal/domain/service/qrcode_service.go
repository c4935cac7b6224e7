package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateLinkQR generates a PNG QR code encoding the given deep link
	GenerateLinkQR(link string) ([]byte, error)
}
