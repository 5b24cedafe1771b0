package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/skip2/go-qrcode"
)

// RenderQRCode draws content as a QR code made of block characters.
func RenderQRCode(content string) (string, error) {
	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to generate QR code: %w", err)
	}
	return q.ToSmallString(false), nil
}

// GenerateQRCodeImage writes content as <name>.png under dirPath and
// returns the full path.
func GenerateQRCodeImage(content, dirPath, name string) (string, error) {
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create QR directory: %w", err)
	}

	fullPath := filepath.Join(dirPath, name+".png")

	if err := qrcode.WriteFile(content, qrcode.Medium, 256, fullPath); err != nil {
		return "", fmt.Errorf("failed to generate QR code: %w", err)
	}

	return fullPath, nil
}
