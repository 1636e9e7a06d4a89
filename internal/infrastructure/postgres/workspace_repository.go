package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/surgishop-scanner/internal/domain"
	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
	"github.com/jhoicas/surgishop-scanner/internal/domain/repository"
)

var (
	_ repository.WorkspaceRepository   = (*WorkspaceRepo)(nil)
	_ repository.CustomFieldRepository = (*CustomFieldRepo)(nil)
)

// WorkspaceRepo workspaces del escritorio. Los enlaces se guardan como JSON sin interpretar
// más allá de los campos conocidos; links_version cambia en cada guardado.
type WorkspaceRepo struct {
	q Querier
}

func NewWorkspaceRepository(q Querier) *WorkspaceRepo {
	return &WorkspaceRepo{q: q}
}

func (r *WorkspaceRepo) Get(ctx context.Context, name string) (*entity.Workspace, error) {
	var ws entity.Workspace
	var raw []byte
	err := r.q.QueryRow(ctx, `SELECT name, type, links FROM workspaces WHERE name = $1`, name).Scan(&ws.Name, &ws.Type, &raw)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get workspace: %w", err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &ws.Links); err != nil {
			return nil, fmt.Errorf("decode workspace links: %w", err)
		}
	}
	return &ws, nil
}

func (r *WorkspaceRepo) ListNames(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT name FROM workspaces ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan workspaces: %w", err)
	}
	return names, nil
}

func (r *WorkspaceRepo) Save(ctx context.Context, ws *entity.Workspace) error {
	raw, err := json.Marshal(ws.Links)
	if err != nil {
		return fmt.Errorf("encode workspace links: %w", err)
	}
	cmd, err := r.q.Exec(ctx, `
		UPDATE workspaces SET type = $2, links = $3, links_version = links_version + 1
		WHERE name = $1`,
		ws.Name, ws.Type, raw,
	)
	if err != nil {
		return fmt.Errorf("update workspace: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CustomFieldRepo campos personalizados de tipo Select.
type CustomFieldRepo struct {
	q Querier
}

func NewCustomFieldRepository(q Querier) *CustomFieldRepo {
	return &CustomFieldRepo{q: q}
}

func (r *CustomFieldRepo) ListByField(ctx context.Context, docTypes []string, fieldName string) ([]*entity.CustomField, error) {
	rows, err := r.q.Query(ctx, `
		SELECT name, dt, fieldname, options FROM custom_fields
		WHERE dt = ANY($1) AND fieldname = $2 ORDER BY name`,
		docTypes, fieldName,
	)
	if err != nil {
		return nil, fmt.Errorf("list custom fields: %w", err)
	}
	defer rows.Close()

	var out []*entity.CustomField
	for rows.Next() {
		var f entity.CustomField
		if err := rows.Scan(&f.Name, &f.DocType, &f.FieldName, &f.Options); err != nil {
			return nil, fmt.Errorf("scan custom field: %w", err)
		}
		out = append(out, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list custom fields: %w", err)
	}
	return out, nil
}

func (r *CustomFieldRepo) SetOptions(ctx context.Context, name, options string) error {
	if _, err := r.q.Exec(ctx, `UPDATE custom_fields SET options = $2 WHERE name = $1`, name, options); err != nil {
		return fmt.Errorf("update custom field options: %w", err)
	}
	return nil
}
