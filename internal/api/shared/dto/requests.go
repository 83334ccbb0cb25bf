package dto

import (
	"strings"

	apierrors "github.com/runera/runera-backend/internal/api/shared/errors"
	"github.com/runera/runera-backend/internal/domain"
)

// NonceRequest represents the request body for issuing a login challenge
type NonceRequest struct {
	WalletAddress string `json:"walletAddress"`
}

// Validate validates the request body
func (r *NonceRequest) Validate() error {
	r.WalletAddress = strings.TrimSpace(r.WalletAddress)
	if !domain.IsValidWalletAddress(r.WalletAddress) {
		return apierrors.NewBadRequestError("walletAddress must be a valid 0x address", nil)
	}
	return nil
}

// ConnectRequest represents the request body for redeeming a signed login challenge
type ConnectRequest struct {
	WalletAddress string `json:"walletAddress"`
	Signature     string `json:"signature"`
	Message       string `json:"message"`
	Nonce         string `json:"nonce"`
}

// Validate validates the request body
func (r *ConnectRequest) Validate() error {
	r.WalletAddress = strings.TrimSpace(r.WalletAddress)
	r.Signature = strings.TrimSpace(r.Signature)
	r.Nonce = strings.TrimSpace(r.Nonce)

	if !domain.IsValidWalletAddress(r.WalletAddress) {
		return apierrors.NewBadRequestError("walletAddress must be a valid 0x address", nil)
	}
	if r.Signature == "" || r.Message == "" || r.Nonce == "" {
		return apierrors.NewBadRequestError("signature, message, and nonce are required", nil)
	}
	return nil
}
