package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"climate-srv/internal/analysis"
	"climate-srv/internal/connection"
	"climate-srv/pkg/log"
	"climate-srv/pkg/msgraph"
)

type fakeGraph struct {
	users    []msgraph.User
	usersErr error
}

func (f *fakeGraph) TestConnection(ctx context.Context) error { return nil }

func (f *fakeGraph) ListUsers(ctx context.Context) ([]msgraph.User, error) {
	return f.users, f.usersErr
}

func (f *fakeGraph) ListUserMessages(ctx context.Context, userID string, from, to time.Time) ([]msgraph.MailMessage, error) {
	return nil, nil
}

func (f *fakeGraph) ListChats(ctx context.Context) ([]msgraph.Chat, error) { return nil, nil }

func (f *fakeGraph) ListChatMessages(ctx context.Context, chatID string, from, to time.Time) ([]msgraph.ChatMessage, error) {
	return nil, nil
}

type fakeConnection struct {
	ready    bool
	graph    msgraph.IGraph
	graphErr error
}

func (f *fakeConnection) Ready(ctx context.Context) bool { return f.ready }

func (f *fakeConnection) Graph(ctx context.Context) (msgraph.IGraph, error) {
	return f.graph, f.graphErr
}

func (f *fakeConnection) Fetcher(ctx context.Context) (analysis.Fetcher, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeConnection) Engine(ctx context.Context) (analysis.Engine, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeConnection) GetStatus(ctx context.Context) (connection.Status, error) {
	return connection.Status{}, nil
}

func (f *fakeConnection) SaveConfig(ctx context.Context, input connection.SaveConfigInput) error {
	return nil
}

func newMetadataUseCase(conn connection.UseCase) *implUseCase {
	l := log.Init(log.ZapConfig{Level: "error"})
	return New(l, conn).(*implUseCase)
}

func TestGetMetadataDemoFallback(t *testing.T) {
	tests := []struct {
		name string
		conn *fakeConnection
	}{
		{"unconfigured", &fakeConnection{ready: false}},
		{"graph build failure", &fakeConnection{ready: true, graphErr: errors.New("bad credentials")}},
		{"list users failure", &fakeConnection{ready: true, graph: &fakeGraph{usersErr: errors.New("throttled")}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newMetadataUseCase(tt.conn)
			meta, err := uc.GetMetadata(context.Background())
			if err != nil {
				t.Fatalf("GetMetadata() error = %v", err)
			}
			if !reflect.DeepEqual(meta.Departments, demoDepartments) {
				t.Errorf("departments = %v, want demo set", meta.Departments)
			}
			if !reflect.DeepEqual(meta.Countries, demoCountries) {
				t.Errorf("countries = %v, want demo set", meta.Countries)
			}
		})
	}
}

func TestGetMetadataFromDirectory(t *testing.T) {
	graph := &fakeGraph{users: []msgraph.User{
		{ID: "u1", Department: "  ventas ", Country: "colombia"},
		{ID: "u2", Department: "VENTAS", Country: "Panamá"},
		{ID: "u3", Department: "recursos humanos", Country: "Perú"},
		{ID: "u4", Department: "", Country: ""},
	}}
	uc := newMetadataUseCase(&fakeConnection{ready: true, graph: graph})

	meta, err := uc.GetMetadata(context.Background())
	if err != nil {
		t.Fatalf("GetMetadata() error = %v", err)
	}

	wantDepartments := []string{"Contabilidad", "Finanzas", "Mercadeo", "RRHH", "Recursos Humanos", "Ventas"}
	if !reflect.DeepEqual(meta.Departments, wantDepartments) {
		t.Errorf("departments = %v, want %v", meta.Departments, wantDepartments)
	}

	// Peru is excluded, Panamá dedupes against the seeded Panama
	wantCountries := []string{"Colombia", "Ecuador", "Panama"}
	if !reflect.DeepEqual(meta.Countries, wantCountries) {
		t.Errorf("countries = %v, want %v", meta.Countries, wantCountries)
	}
}

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  ventas ", "Ventas"},
		{"VENTAS", "Ventas"},
		{"IT", "IT"},
		{"RRHH", "RRHH"},
		{"recursos humanos", "Recursos Humanos"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := normalizeValue(tt.in); got != tt.want {
			t.Errorf("normalizeValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
