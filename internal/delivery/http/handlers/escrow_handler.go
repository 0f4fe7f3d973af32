package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	escrowRequest "github.com/nexabay/escrow-order-service/internal/delivery/http/dto/escrow/request"
	escrowResponse "github.com/nexabay/escrow-order-service/internal/delivery/http/dto/escrow/response"
)

// HTTPEscrowHandler talks to the payment gateway holding buyer funds.
// It implements domain.EscrowProvider.
type HTTPEscrowHandler struct {
	Address string
}

func NewHTTPEscrowHandler(address string) (*HTTPEscrowHandler, error) {
	return &HTTPEscrowHandler{
		Address: address,
	}, nil
}

func (h *HTTPEscrowHandler) SubmitPayment(orderID string, amount float64) error {
	return h.post("/escrow/lock", escrowRequest.LockRequest{
		OrderID: orderID,
		Amount:  amount,
	})
}

func (h *HTTPEscrowHandler) ReleaseFunds(orderID, recipientID string) error {
	return h.post("/escrow/release", escrowRequest.ReleaseRequest{
		OrderID:     orderID,
		RecipientID: recipientID,
	})
}

func (h *HTTPEscrowHandler) Refund(orderID string) error {
	return h.post("/escrow/refund", escrowRequest.RefundRequest{
		OrderID: orderID,
	})
}

func (h *HTTPEscrowHandler) post(path string, payload interface{}) error {
	requestBodyBytes, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	response, err := http.Post(fmt.Sprintf("%s%s", h.Address, path), "application/json", bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return err
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return nil
	}

	var errorResponse escrowResponse.ErrorResponse
	if err := json.Unmarshal(responseBodyBytes, &errorResponse); err != nil {
		return fmt.Errorf("escrow gateway returned status %d", response.StatusCode)
	}
	return errors.New(errorResponse.Error)
}
