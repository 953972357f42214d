package dailyreport

import (
	"errors"
	"strings"

	dailyreporterrors "github.com/riooastfu/pastimobile-be/internal/dailyreport/errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return dailyreporterrors.ErrDuplicateEntry
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 {
		return dailyreporterrors.ErrDuplicateEntry
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return dailyreporterrors.ErrDuplicateEntry
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") || strings.Contains(errMsg, "duplicate entry") {
		return dailyreporterrors.ErrDuplicateEntry
	}

	return err
}
