package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/YeZawHlaing/eduverse/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var uniqueKeySuffix = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)

// ErrCode reports the Code of the first *Error in err's chain, or Other.
func ErrCode(err error) Code {
	var pgerr *Error
	if errors.As(err, &pgerr) {
		return pgerr.Code
	}
	var raw *pgconn.PgError
	if errors.As(err, &raw) {
		return MapCode(raw.Code)
	}
	return Other
}

// generateErrorCode builds <DOMAIN>_<ACTION>, e.g. pathways + UniqueViolation
// gives PATHWAY_ALREADY_EXISTS.
func generateErrorCode(tableName string, errType Code) string {
	domain := domainName(tableName)

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation, ExclusionViolation:
		action = "INVALID"
	case StringDataRightTruncation:
		action = "TOO_LONG"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// domainName upper-cases and naively singularizes a table name.
func domainName(tableName string) string {
	if tableName == "" {
		return "RECORD"
	}

	domain := strings.ToUpper(tableName)
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}
	return domain
}

// formatUserFriendlyMessage produces a client-facing message for sqlErr.
func formatUserFriendlyMessage(sqlErr *Error) string {
	entityName := getEntityName(sqlErr.TableName, sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entityName)

	case UniqueViolation:
		fieldName := humanizeText(extractColumnForUniqueViolation(sqlErr.ConstraintName))
		if fieldName == "" {
			fieldName = "identifier"
		}
		return fmt.Sprintf("%s %s with this %s already exists", article(entityName), entityName, fieldName)

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation, ExclusionViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	case StringDataRightTruncation:
		return "One or more values are too long"

	default:
		return "An error occurred while processing your request"
	}
}

// getEntityName prefers a "<entity>_id" column, then the singularized table,
// then "record".
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		entity := strings.TrimSuffix(strings.ToLower(columnName), "_id")
		return humanizeText(entity)
	}

	if tableName != "" {
		entity := tableName
		if strings.HasSuffix(entity, "s") && len(entity) > 1 {
			entity = entity[:len(entity)-1]
		}
		return humanizeText(entity)
	}

	return "record"
}

// article picks "A" or "An" by the first letter of word.
func article(word string) string {
	if word != "" && strings.ContainsRune("AEIOUaeiou", rune(word[0])) {
		return "An"
	}
	return "A"
}

// humanizeText turns "first_name" into "First Name".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// extractColumnForUniqueViolation reads the column out of a unique constraint
// named either unique_<table>_<column> or <table>_<column>_key.
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	matches := uniqueKeySuffix.FindStringSubmatch(constraintName)
	if len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// HandleError classifies a database error. See HandleTableError.
func HandleError(err error) error {
	return HandleTableError("", err)
}

// HandleTableError converts a low-level database error raised while working on
// table into an *errs.Error:
//   - already classified errors are returned unchanged
//   - unique violations become errs.KindDuplicateKey
//   - foreign key, not null, check, exclusion and truncation failures become
//     errs.KindIntegrityViolation
//   - pgx.ErrNoRows / sql.ErrNoRows become errs.KindNotFound
//   - anything else becomes errs.KindUnknown, keeping the cause for logs
//
// A nil err yields nil.
func HandleTableError(table string, err error) error {
	if err == nil {
		return nil
	}

	var classified *errs.Error
	if errors.As(err, &classified) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)
		if sqlErr.TableName == "" {
			sqlErr.TableName = table
		}

		var kind errs.Kind
		switch sqlErr.Code {
		case UniqueViolation:
			kind = errs.KindDuplicateKey
		case Other:
			kind = errs.KindUnknown
		default:
			kind = errs.KindIntegrityViolation
		}

		return &errs.Error{
			Kind:    kind,
			Code:    generateErrorCode(sqlErr.TableName, sqlErr.Code),
			Message: formatUserFriendlyMessage(sqlErr),
			Err:     sqlErr,
		}
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		message := "Resource not found"
		code := "NOT_FOUND"
		if table != "" {
			message = fmt.Sprintf("%s not found", getEntityName(table, ""))
			code = domainName(table) + "_NOT_FOUND"
		}
		return &errs.Error{
			Kind:    errs.KindNotFound,
			Code:    code,
			Message: message,
			Err:     err,
		}
	}

	return &errs.Error{Kind: errs.KindUnknown, Err: err}
}
