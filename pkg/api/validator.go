package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO.
// Проверяется автоматически в обертке хендлера до вызова логики.
type Validator interface {
	Validate() error
}

func (p JoinRoomPayload) Validate() error {
	if p.WalletAddress == "" {
		return errors.New("walletAddress is required")
	}
	if p.RoomName == "" {
		return errors.New("roomName is required")
	}
	return nil
}

func (p PlayerAttackPayload) Validate() error {
	if p.AttackerWallet == "" || p.TargetWallet == "" {
		return errors.New("attackerWallet and targetWallet are required")
	}
	return nil
}

func (p WhisperPayload) Validate() error {
	if p.TargetWallet == "" {
		return errors.New("targetWallet is required")
	}
	return nil
}
