package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// HTTPContentHandler claims delivery payloads (keys, credentials, links) from
// the seller stock service. It implements domain.DeliveryProvider.
type HTTPContentHandler struct {
	Address string
}

func NewHTTPContentHandler(address string) (*HTTPContentHandler, error) {
	return &HTTPContentHandler{
		Address: address,
	}, nil
}

type claimResponse struct {
	PayloadRef string `json:"payload_ref"`
	Error      string `json:"error,omitempty"`
}

func (h *HTTPContentHandler) FetchPayload(ctx context.Context, listingID string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/stock/%s/claim", h.Address, listingID), nil)
	if err != nil {
		return "", err
	}

	response, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return "", err
	}

	var claim claimResponse
	if err := json.Unmarshal(responseBodyBytes, &claim); err != nil {
		return "", err
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		if claim.Error != "" {
			return "", errors.New(claim.Error)
		}
		return "", fmt.Errorf("content service returned status %d", response.StatusCode)
	}
	if claim.PayloadRef == "" {
		return "", errors.New("content service returned empty payload")
	}
	return claim.PayloadRef, nil
}
