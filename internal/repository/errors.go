package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgStringDataRightTruncation is raised by postgres for a value longer than
// its column.
const pgStringDataRightTruncation = "22001"

var (
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrCallNotFound         = errors.New("customer call not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrUsernameTaken        = errors.New("username already taken")
	ErrUnknownCustomer      = errors.New("customer does not exist")
	ErrUnknownReferenceCode = errors.New("unknown reference code")
	ErrForeignKeyViolation  = errors.New("foreign key violation")
	ErrValueTooLong         = errors.New("value too long for column")
)

// translate maps gorm's translated driver errors onto repository errors.
// notFound is returned for gorm.ErrRecordNotFound.
func translate(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrForeignKeyViolation
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgStringDataRightTruncation {
		return ErrValueTooLong
	}
	return err
}
