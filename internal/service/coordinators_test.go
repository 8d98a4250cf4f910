package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/service"
	mock_service "github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/service/mocks"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/storage/memory"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/pkg/e"
)

func newDirectory(t *testing.T) (*service.CoordinatorDirectory, *memory.Tree) {
	t.Helper()
	tree := memory.New()
	return service.NewCoordinatorDirectory(tree, newTestLogger()), tree
}

func TestHashPassword_KnownDigest(t *testing.T) {
	t.Parallel()

	// sha256("pw1")
	const want = "c592df4a86933b92addc9842402ddf198c638ea9be58916ee6e3734e1e3152f8"
	if got := service.HashPassword("pw1"); got != want {
		t.Fatalf("unexpected digest %q", got)
	}
}

func TestCoordinatorDirectory_AddVerifyDeactivate(t *testing.T) {
	t.Parallel()

	dir, _ := newDirectory(t)
	ctx := context.Background()

	if err := dir.Add(ctx, "alice", "pw1"); err != nil {
		t.Fatalf("add: %v", err)
	}

	c, err := dir.Verify(ctx, "alice", "pw1")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if c.Username != "alice" || !c.Active {
		t.Fatalf("unexpected record %+v", c)
	}

	if _, err := dir.Verify(ctx, "alice", "wrong"); !errors.Is(err, e.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}

	if err := dir.Deactivate(ctx, "alice"); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if _, err := dir.Verify(ctx, "alice", "pw1"); !errors.Is(err, e.ErrDeactivated) {
		t.Fatalf("deactivated: expected ErrDeactivated, got %v", err)
	}
}

func TestCoordinatorDirectory_VerifyOrder(t *testing.T) {
	t.Parallel()

	dir, _ := newDirectory(t)
	ctx := context.Background()

	if err := dir.Add(ctx, "bob", "secret"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := dir.Deactivate(ctx, "bob"); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	// password is checked before the active flag
	if _, err := dir.Verify(ctx, "bob", "nope"); !errors.Is(err, e.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := dir.Verify(ctx, "carol", "secret"); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCoordinatorDirectory_DeactivateIsIdempotent(t *testing.T) {
	t.Parallel()

	dir, _ := newDirectory(t)
	ctx := context.Background()

	if err := dir.Add(ctx, "alice", "pw1"); err != nil {
		t.Fatalf("add: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := dir.Deactivate(ctx, "alice"); err != nil {
			t.Fatalf("deactivate #%d: %v", i+1, err)
		}
	}

	list, err := dir.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Active {
		t.Fatalf("expected one inactive coordinator, got %+v", list)
	}
}

func TestCoordinatorDirectory_Add_Duplicate(t *testing.T) {
	t.Parallel()

	dir, _ := newDirectory(t)
	ctx := context.Background()

	if err := dir.Add(ctx, "alice", "pw1"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := dir.Add(ctx, "alice", "other"); !errors.Is(err, e.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	// the first password still works
	if _, err := dir.Verify(ctx, "alice", "pw1"); err != nil {
		t.Fatalf("verify: %v", err)
	}
}

func TestCoordinatorDirectory_Add_StoresDigestOnly(t *testing.T) {
	t.Parallel()

	dir, tree := newDirectory(t)
	ctx := context.Background()

	if err := dir.Add(ctx, "alice", "pw1"); err != nil {
		t.Fatalf("add: %v", err)
	}

	raw, err := tree.Get(ctx, "coordinators/alice")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	var rec map[string]any
	if err := json.Unmarshal(raw, &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rec["password"] != service.HashPassword("pw1") {
		t.Fatalf("expected digest stored, got %v", rec["password"])
	}
	if rec["active"] != true {
		t.Fatalf("expected active=true, got %v", rec["active"])
	}
	if rec["created_at"] == "" || rec["created_at"] == nil {
		t.Fatalf("expected created_at, got %v", rec["created_at"])
	}
}

func TestCoordinatorDirectory_Add_InvalidInput(t *testing.T) {
	t.Parallel()

	dir, _ := newDirectory(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"empty username", "", "pw"},
		{"slash", "a/b", "pw"},
		{"dot", "a.b", "pw"},
		{"empty password", "alice", ""},
	}
	for _, c := range cases {
		if err := dir.Add(ctx, c.username, c.password); !errors.Is(err, e.ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", c.name, err)
		}
	}
}

func TestCoordinatorDirectory_DeleteAndMissing(t *testing.T) {
	t.Parallel()

	dir, _ := newDirectory(t)
	ctx := context.Background()

	if err := dir.Add(ctx, "dave", "pw"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := dir.Delete(ctx, "dave"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := dir.Verify(ctx, "dave", "pw"); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := dir.Delete(ctx, "dave"); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}
	if err := dir.Deactivate(ctx, "dave"); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("deactivate missing: expected ErrNotFound, got %v", err)
	}
}

func TestCoordinatorDirectory_List_InjectsUsernameFromKey(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_service.NewMockStore(ctrl)
	store.EXPECT().
		Get(gomock.Any(), "coordinators").
		Return(json.RawMessage(`{"zoe":{"password":"x"},"ana":{"username":"ana","password":"y","active":false},"ghost":null,"bad":7}`), nil).
		Times(1)

	dir := service.NewCoordinatorDirectory(store, newTestLogger())

	list, err := dir.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 coordinators, got %+v", list)
	}
	if list[0].Username != "ana" || list[0].Active {
		t.Fatalf("unexpected first record %+v", list[0])
	}
	if list[1].Username != "zoe" || !list[1].Active {
		t.Fatalf("missing active flag should read as active: %+v", list[1])
	}
}

func TestCoordinatorDirectory_StoreUnavailable(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_service.NewMockStore(ctrl)
	store.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(nil, &e.StoreError{Op: "GET", Path: "coordinators/alice", Status: 502}).
		AnyTimes()

	dir := service.NewCoordinatorDirectory(store, newTestLogger())
	ctx := context.Background()

	if err := dir.Add(ctx, "alice", "pw1"); !errors.Is(err, e.ErrStoreUnavailable) {
		t.Fatalf("add: expected ErrStoreUnavailable, got %v", err)
	}
	if _, err := dir.Verify(ctx, "alice", "pw1"); !errors.Is(err, e.ErrStoreUnavailable) {
		t.Fatalf("verify: expected ErrStoreUnavailable, got %v", err)
	}
	if _, err := dir.List(ctx); !errors.Is(err, e.ErrStoreUnavailable) {
		t.Fatalf("list: expected ErrStoreUnavailable, got %v", err)
	}
}
