package usecase

import (
	disputedto "github.com/nexabay/escrow-order-service/internal/usecase/dto/dispute"
)

func (disputeUc *DefaultDisputeUsecase) GetDisputeByID(disputeID string) (*disputedto.DisputeOutput, error) {
	dispute, err := disputeUc.disputeRepo.GetDisputeByID(disputeID)
	if err != nil {
		return nil, err
	}
	return toOutput(dispute), nil
}

func (disputeUc *DefaultDisputeUsecase) GetDisputeByOrderID(orderID string) (*disputedto.DisputeOutput, error) {
	dispute, err := disputeUc.disputeRepo.GetDisputeByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	return toOutput(dispute), nil
}
