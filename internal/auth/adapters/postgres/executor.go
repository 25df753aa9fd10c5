// Package postgres содержит адаптеры хранения для сервиса аутентификации.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"authvault/pkg/logger"
)

// PgxPoolInterface описывает используемое подмножество pgxpool.Pool.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

// ErrQueryFailed присутствует в цепочке любой ошибки выполнения запроса.
// Вызывающая сторона отличает по ней сбой хранилища от пустого результата.
var ErrQueryFailed = errors.New("query execution failed")

// Константы для сообщений логгера.
const (
	logQueryExecuted = "query executed"
	errMsgRunQuery   = "error executing query"
	errMsgReadRow    = "error reading result row"

	errCtxRunningQuery = "running query"
	errCtxReadingRows  = "reading result rows"
)

// Params описывает части параметризованного SQL выражения.
// Query - список полей или присваиваний, Where - условие или список
// плейсхолдеров значений, Variables - позиционные аргументы. Соответствие
// количества и порядка плейсхолдеров аргументам обеспечивает вызывающая
// сторона, исполнитель его не проверяет.
type Params struct {
	Query      string
	Where      string
	TableAlias string
	TempTable  string
	Variables  []interface{}
}

// Executor выполняет параметризованные запросы над одной таблицей и
// отображает строки результата в записи типа T.
type Executor[T any] struct {
	pool  PgxPoolInterface
	table string
}

// NewExecutor создает исполнитель запросов для указанной таблицы.
func NewExecutor[T any](pool PgxPoolInterface, table string) *Executor[T] {
	return &Executor[T]{pool: pool, table: table}
}

// Query выполняет SELECT по условию params.Where.
func (e *Executor[T]) Query(ctx context.Context, params Params) ([]T, error) {
	query := "SELECT " + params.Query + " FROM " + e.table + " WHERE " + params.Where
	return e.run(ctx, query, params.Variables)
}

// Insert выполняет INSERT c RETURNING *.
func (e *Executor[T]) Insert(ctx context.Context, params Params) ([]T, error) {
	query := "INSERT INTO " + e.table + " (" + params.Query + ") VALUES (" + params.Where + ") RETURNING *"
	return e.run(ctx, query, params.Variables)
}

// Update выполняет UPDATE c RETURNING *.
func (e *Executor[T]) Update(ctx context.Context, params Params) ([]T, error) {
	query := "UPDATE " + e.table + " SET " + params.Query + " WHERE " + params.Where + " RETURNING *"
	return e.run(ctx, query, params.Variables)
}

// UpdateMany выполняет UPDATE по временной таблице c RETURNING *.
func (e *Executor[T]) UpdateMany(ctx context.Context, params Params) ([]T, error) {
	query := "UPDATE " + e.table + " AS " + params.TableAlias +
		" SET " + params.Query +
		" FROM " + params.TempTable +
		" WHERE " + params.Where + " RETURNING *"
	return e.run(ctx, query, params.Variables)
}

// Delete не реализован: всегда возвращает пустой результат.
// Ядро сервиса не удаляет пользователей.
func (e *Executor[T]) Delete(_ context.Context, _ Params) ([]T, error) {
	return []T{}, nil
}

func (e *Executor[T]) run(ctx context.Context, query string, variables []interface{}) ([]T, error) {
	log := logger.Log(ctx).With(zap.String("table", e.table))
	start := time.Now()

	rows, err := e.pool.Query(ctx, query, variables...)
	if err != nil {
		log.Error(ctx, errMsgRunQuery, zap.String("query", query), zap.Error(err))
		return nil, fmt.Errorf("%s: %w: %w", errCtxRunningQuery, ErrQueryFailed, err)
	}
	defer rows.Close()

	columns := make([]string, 0, len(rows.FieldDescriptions()))
	for _, fd := range rows.FieldDescriptions() {
		columns = append(columns, underscoreToCamelCase(fd.Name))
	}

	result := []T{}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			log.Error(ctx, errMsgReadRow, zap.Error(err))
			return nil, fmt.Errorf("%s: %w: %w", errCtxReadingRows, ErrQueryFailed, err)
		}
		var record T
		mapRow(columns, values, &record)
		result = append(result, record)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, errMsgRunQuery, zap.String("query", query), zap.Error(err))
		return nil, fmt.Errorf("%s: %w: %w", errCtxReadingRows, ErrQueryFailed, err)
	}

	log.Debug(ctx, logQueryExecuted,
		zap.String("query", query),
		zap.Int("rows", len(result)),
		zap.Duration("time", time.Since(start)))

	return result, nil
}

// underscoreToCamelCase переводит имя колонки из snake_case в camelCase:
// refresh_token -> refreshToken.
func underscoreToCamelCase(name string) string {
	var sb strings.Builder
	upper := false
	for _, r := range name {
		if r == '_' {
			upper = true
			continue
		}
		if upper {
			sb.WriteString(strings.ToUpper(string(r)))
			upper = false
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// mapRow заполняет поля записи значениями колонок по совпадению имен без
// учета регистра. Лишние колонки отбрасываются, отсутствующие поля
// остаются нулевыми.
func mapRow[T any](columns []string, values []interface{}, record *T) {
	target := reflect.ValueOf(record).Elem()
	targetType := target.Type()

	for i, column := range columns {
		if i >= len(values) || values[i] == nil {
			continue
		}
		for j := 0; j < targetType.NumField(); j++ {
			if !strings.EqualFold(targetType.Field(j).Name, column) {
				continue
			}
			field := target.Field(j)
			if !field.CanSet() {
				break
			}
			value := reflect.ValueOf(values[i])
			switch {
			case value.Type().AssignableTo(field.Type()):
				field.Set(value)
			case value.Type().ConvertibleTo(field.Type()):
				field.Set(value.Convert(field.Type()))
			}
			break
		}
	}
}
