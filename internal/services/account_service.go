package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "keuanganku/internal/errors"
	"keuanganku/internal/models"
)

// accountService handles account-related business logic.
type accountService struct {
	db *gorm.DB
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(db *gorm.DB) AccountServicer {
	return &accountService{db: db}
}

// CreateAccount creates a new cash or bank account for a user. The initial
// balance is the baseline the ledger starts from; it may be negative.
func (s *accountService) CreateAccount(userID uint, name string, accountType models.AccountType, initialBalance int64, ownerTag string) (*models.Account, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account name is required")
	}

	switch accountType {
	case models.AccountTypeCash, models.AccountTypeBank:
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account type must be cash or bank")
	}

	account := &models.Account{
		UserID:         userID,
		Name:           name,
		Type:           accountType,
		InitialBalance: initialBalance,
		OwnerTag:       ownerTag,
	}

	if err := s.db.Create(account).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return account, nil
}

// GetUserAccounts retrieves every account of a user in creation order.
// Accounts are few per user, so the list is not paginated; the ledger and
// the account picker both want the complete set.
func (s *accountService) GetUserAccounts(userID uint) ([]models.Account, error) {
	var accounts []models.Account
	if err := s.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return accounts, nil
}

// GetAccountByID retrieves an account by ID for a specific user
func (s *accountService) GetAccountByID(userID, accountID uint) (*models.Account, error) {
	var account models.Account
	if err := s.db.Where("id = ? AND user_id = ?", accountID, userID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &account, nil
}

// UpdateAccount updates an existing account. Only non-nil fields are applied.
func (s *accountService) UpdateAccount(userID, accountID uint, fields AccountUpdateFields) (*models.Account, error) {
	account, err := s.GetAccountByID(userID, accountID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})

	if fields.Name != nil && *fields.Name != "" {
		updates["name"] = *fields.Name
	}
	if fields.InitialBalance != nil {
		updates["initial_balance"] = *fields.InitialBalance
	}
	if fields.OwnerTag != nil {
		updates["owner_tag"] = *fields.OwnerTag
	}

	if len(updates) > 0 {
		if err := s.db.Model(account).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		// Reload to get fresh data
		if err := s.db.Where("id = ?", account.ID).First(account).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return account, nil
}

// DeleteAccount deletes an account that no transaction references.
// The referential guard keeps the transaction log free of orphans.
func (s *accountService) DeleteAccount(userID, accountID uint) error {
	account, err := s.GetAccountByID(userID, accountID)
	if err != nil {
		return err
	}

	var referencing int64
	if err := s.db.Model(&models.Transaction{}).Where("account_id = ?", account.ID).Count(&referencing).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if referencing > 0 {
		return apperrors.ErrAccountInUse
	}

	if err := s.db.Delete(account).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ResetAllBalances zeroes the initial balance of every account of the user.
func (s *accountService) ResetAllBalances(userID uint) error {
	if err := s.db.Model(&models.Account{}).Where("user_id = ?", userID).Update("initial_balance", 0).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
