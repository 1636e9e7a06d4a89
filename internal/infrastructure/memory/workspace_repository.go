package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
	"github.com/jhoicas/surgishop-scanner/internal/domain/repository"
)

var (
	_ repository.WorkspaceRepository   = (*WorkspaceRepo)(nil)
	_ repository.CustomFieldRepository = (*CustomFieldRepo)(nil)
)

// WorkspaceRepo workspaces en memoria. Saves cuenta los guardados.
type WorkspaceRepo struct {
	mu         sync.RWMutex
	workspaces map[string]*entity.Workspace
	Saves      int
	SaveErr    error
	ListErr    error
}

func NewWorkspaceRepo(workspaces ...entity.Workspace) *WorkspaceRepo {
	r := &WorkspaceRepo{workspaces: make(map[string]*entity.Workspace)}
	for _, ws := range workspaces {
		r.workspaces[ws.Name] = cloneWorkspace(&ws)
	}
	return r
}

func (r *WorkspaceRepo) Get(_ context.Context, name string) (*entity.Workspace, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ws, ok := r.workspaces[name]
	if !ok {
		return nil, nil
	}
	return cloneWorkspace(ws), nil
}

func (r *WorkspaceRepo) ListNames(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	names := make([]string, 0, len(r.workspaces))
	for n := range r.workspaces {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

func (r *WorkspaceRepo) Save(_ context.Context, ws *entity.Workspace) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.workspaces[ws.Name] = cloneWorkspace(ws)
	r.Saves++
	return nil
}

func cloneWorkspace(ws *entity.Workspace) *entity.Workspace {
	copied := *ws
	copied.Links = append([]entity.WorkspaceLink(nil), ws.Links...)
	return &copied
}

// CustomFieldRepo campos personalizados en memoria.
type CustomFieldRepo struct {
	mu     sync.RWMutex
	fields []*entity.CustomField
}

func NewCustomFieldRepo(fields ...entity.CustomField) *CustomFieldRepo {
	r := &CustomFieldRepo{}
	for _, f := range fields {
		copied := f
		r.fields = append(r.fields, &copied)
	}
	return r
}

func (r *CustomFieldRepo) ListByField(_ context.Context, docTypes []string, fieldName string) ([]*entity.CustomField, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	allowed := make(map[string]bool, len(docTypes))
	for _, dt := range docTypes {
		allowed[dt] = true
	}
	var out []*entity.CustomField
	for _, f := range r.fields {
		if allowed[f.DocType] && f.FieldName == fieldName {
			copied := *f
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *CustomFieldRepo) SetOptions(_ context.Context, name, options string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.fields {
		if f.Name == name {
			f.Options = options
			return nil
		}
	}
	return nil
}

// Options devuelve las opciones actuales del campo por nombre.
func (r *CustomFieldRepo) Options(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, f := range r.fields {
		if f.Name == name {
			return f.Options
		}
	}
	return ""
}
