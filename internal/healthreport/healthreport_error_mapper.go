package healthreport

import (
	"errors"
	"strings"

	healthreporterrors "github.com/riooastfu/pastimobile-be/internal/healthreport/errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return healthreporterrors.ErrReportNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return healthreporterrors.ErrDuplicateReport
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 {
		return healthreporterrors.ErrDuplicateReport
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return healthreporterrors.ErrDuplicateReport
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") || strings.Contains(errMsg, "duplicate entry") {
		return healthreporterrors.ErrDuplicateReport
	}

	return err
}
