package attendance

import (
	"errors"
	"strings"

	attendanceerrors "github.com/riooastfu/pastimobile-be/internal/attendance/errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
)

const mysqlDuplicateEntry = 1062

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
		return attendanceerrors.ErrAttendanceDuplicate
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return attendanceerrors.ErrAttendanceDuplicate
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate") && strings.Contains(errMsg, "att_id") {
		return attendanceerrors.ErrAttendanceDuplicate
	}

	return err
}
