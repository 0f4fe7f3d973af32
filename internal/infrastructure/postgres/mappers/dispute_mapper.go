package mappers

import (
	"encoding/json"

	"github.com/nexabay/escrow-order-service/internal/domain"
	"github.com/nexabay/escrow-order-service/internal/infrastructure/postgres/models"
)

func ToDomainDispute(model *models.DisputeModel) *domain.Dispute {
	var evidence []string
	if model.Evidence != "" {
		// Corrupt evidence JSON should not hide the dispute itself.
		_ = json.Unmarshal([]byte(model.Evidence), &evidence)
	}

	return &domain.Dispute{
		ID:         model.ID,
		OrderID:    model.OrderID,
		Reason:     model.Reason,
		Evidence:   evidence,
		Status:     domain.DisputeStatus(model.Status),
		OpenedAt:   model.OpenedAt,
		ResolvedAt: model.ResolvedAt,
		ResolvedBy: model.ResolvedBy,
	}
}

func ToGORMDispute(dispute *domain.Dispute) (*models.DisputeModel, error) {
	evidence, err := json.Marshal(dispute.Evidence)
	if err != nil {
		return nil, err
	}

	return &models.DisputeModel{
		ID:         dispute.ID,
		OrderID:    dispute.OrderID,
		Reason:     dispute.Reason,
		Evidence:   string(evidence),
		Status:     string(dispute.Status),
		OpenedAt:   dispute.OpenedAt,
		ResolvedAt: dispute.ResolvedAt,
		ResolvedBy: dispute.ResolvedBy,
	}, nil
}
