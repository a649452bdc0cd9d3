package services

import (
	"errors"

	"github.com/zha7nea/callcenter/internal/model"
	"github.com/zha7nea/callcenter/internal/repository"
)

var (
	ErrCustomerNotFound     = model.NewError(model.ErrNotFound, "Customer not found")
	ErrCallNotFound         = model.NewError(model.ErrNotFound, "Customer call not found")
	ErrUnknownCustomer      = model.NewError(model.ErrIntegrity, "Database integrity error: customer does not exist")
	ErrUnknownReferenceCode = model.NewError(model.ErrIntegrity, "Database integrity error: unknown call outcome or status code")
	ErrIntegrity            = model.NewError(model.ErrIntegrity, "Database integrity error")
	ErrUsernameTaken        = model.NewError(model.ErrIntegrity, "Username already taken")
	ErrValueTooLong         = model.NewError(model.ErrValidation, "Field value is too long")
	ErrInvalidCredentials   = model.NewError(model.ErrUnauthenticated, "Invalid credentials")
	ErrMissingToken         = model.NewError(model.ErrUnauthenticated, "Missing Authorization Header")
	ErrInvalidToken         = model.NewError(model.ErrUnauthenticated, "Invalid token")
	ErrTokenExpired         = model.NewError(model.ErrUnauthenticated, "Token has expired")
	ErrTokenRevoked         = model.NewError(model.ErrUnauthenticated, "Token has been revoked")
	ErrForbidden            = model.NewError(model.ErrForbidden, "Access forbidden: You do not have the required role")
)

// mapRepositoryError converts repository sentinels to client-facing errors.
// Anything it does not recognise is returned unchanged.
func mapRepositoryError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrCustomerNotFound):
		return ErrCustomerNotFound
	case errors.Is(err, repository.ErrCallNotFound):
		return ErrCallNotFound
	case errors.Is(err, repository.ErrUnknownCustomer):
		return ErrUnknownCustomer
	case errors.Is(err, repository.ErrUnknownReferenceCode):
		return ErrUnknownReferenceCode
	case errors.Is(err, repository.ErrForeignKeyViolation):
		return ErrIntegrity
	case errors.Is(err, repository.ErrUsernameTaken):
		return ErrUsernameTaken
	case errors.Is(err, repository.ErrValueTooLong):
		return ErrValueTooLong
	}
	return err
}
