package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"

	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/domain"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/service"
	mock_service "github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/service/mocks"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/storage/memory"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/pkg/e"
)

var valencia = domain.Coordinates{Lat: 39.424540, Lon: -0.442743}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func intPtr(v int) *int             { return &v }
func strPtr(v string) *string       { return &v }
func f64ptr(v float64) *float64     { return &v }
func listPtr(v ...string) *[]string { return &v }

func newZones(t *testing.T) (*service.ZoneRepository, *memory.Tree) {
	t.Helper()
	tree := memory.New()
	return service.NewZoneRepository(tree, newTestLogger(), valencia), tree
}

func mustCreate(t *testing.T, repo *service.ZoneRepository, name string) *domain.Zone {
	t.Helper()
	z, err := repo.Create(context.Background(), domain.CreateZoneRequest{Name: name})
	if err != nil {
		t.Fatalf("create %q: %v", name, err)
	}
	return z
}

func storedZones(t *testing.T, raw string) *service.ZoneRepository {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mock_service.NewMockStore(ctrl)
	store.EXPECT().Get(gomock.Any(), "zones").Return(json.RawMessage(raw), nil).AnyTimes()
	return service.NewZoneRepository(store, newTestLogger(), valencia)
}

// --- Create / List ---

func TestZoneRepository_CreateThenList_RoundTrip(t *testing.T) {
	t.Parallel()

	repo, _ := newZones(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.CreateZoneRequest{
		Name:        "Paiporta",
		Latitude:    f64ptr(39.4286),
		Longitude:   f64ptr(-0.4175),
		AccessNotes: "Entrance by Av. Francesc Ciscar",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if created.ID != "zone_0" {
		t.Fatalf("expected zone_0, got %q", created.ID)
	}
	if created.VolunteerCount != 0 || created.Status != domain.ZoneNeeded {
		t.Fatalf("expected 0 volunteers and needed, got %d %q", created.VolunteerCount, created.Status)
	}
	if created.PendingNeeds == nil || len(created.PendingNeeds) != 0 {
		t.Fatalf("expected empty pending needs, got %#v", created.PendingNeeds)
	}
	if created.CoveredNeeds == nil || len(created.CoveredNeeds) != 0 {
		t.Fatalf("expected empty covered needs, got %#v", created.CoveredNeeds)
	}
	if created.LastUpdate == "" || created.LastUpdate == domain.LastUpdateAbsent {
		t.Fatalf("expected last_update to be stamped, got %q", created.LastUpdate)
	}

	zones, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(zones) != 1 {
		t.Fatalf("expected exactly one zone, got %d", len(zones))
	}
	if diff := cmp.Diff(*created, zones[0]); diff != "" {
		t.Fatalf("listed zone differs from created (-want +got):\n%s", diff)
	}
}

func TestZoneRepository_Create_DefaultsToMapCentre(t *testing.T) {
	t.Parallel()

	repo, _ := newZones(t)
	z := mustCreate(t, repo, "Sedaví")

	if z.Latitude != valencia.Lat || z.Longitude != valencia.Lon {
		t.Fatalf("expected map centre, got %f,%f", z.Latitude, z.Longitude)
	}
}

func TestZoneRepository_Create_SanitizesName(t *testing.T) {
	t.Parallel()

	repo, _ := newZones(t)
	z := mustCreate(t, repo, "  <script>alert(1)</script>Alfafar ")

	if z.Name != "Alfafar" {
		t.Fatalf("expected sanitized name, got %q", z.Name)
	}
}

func TestZoneRepository_Create_RejectsBlankName(t *testing.T) {
	t.Parallel()

	repo, _ := newZones(t)
	_, err := repo.Create(context.Background(), domain.CreateZoneRequest{Name: "<b></b>"})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestZoneRepository_Create_RejectsBadCoordinates(t *testing.T) {
	t.Parallel()

	repo, _ := newZones(t)
	_, err := repo.Create(context.Background(), domain.CreateZoneRequest{Name: "Nowhere", Latitude: f64ptr(91)})
	if !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates, got %v", err)
	}
}

func TestZoneRepository_IDsNeverReused(t *testing.T) {
	t.Parallel()

	repo, _ := newZones(t)
	ctx := context.Background()

	a := mustCreate(t, repo, "Catarroja")
	b := mustCreate(t, repo, "Massanassa")
	if a.ID != "zone_0" || b.ID != "zone_1" {
		t.Fatalf("unexpected ids %q %q", a.ID, b.ID)
	}

	if err := repo.Delete(ctx, b.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	c := mustCreate(t, repo, "Benetússer")
	if c.ID != "zone_2" {
		t.Fatalf("expected zone_2 after deleting zone_1, got %q", c.ID)
	}
}

func TestZoneRepository_Create_ContinuesLegacyNumbering(t *testing.T) {
	t.Parallel()

	repo, tree := newZones(t)
	ctx := context.Background()

	if err := tree.Put(ctx, "zones", map[string]any{
		"zone_0": map[string]any{"name": "Aldaia"},
		"zone_4": map[string]any{"name": "Picanya"},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	z := mustCreate(t, repo, "Torrent")
	if z.ID != "zone_5" {
		t.Fatalf("expected zone_5, got %q", z.ID)
	}
}

func TestZoneRepository_List_EmptyStore(t *testing.T) {
	t.Parallel()

	repo, _ := newZones(t)
	zones, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if zones == nil || len(zones) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", zones)
	}
}

// --- stored shapes ---

func TestZoneRepository_List_NullNeedsBecomeEmpty(t *testing.T) {
	t.Parallel()

	repo := storedZones(t, `{"zone_0":{"name":"Alfafar","volunteer_count":10,"pending_needs":null,"covered_needs":null}}`)

	zones, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(zones) != 1 {
		t.Fatalf("expected 1 zone, got %d", len(zones))
	}
	z := zones[0]
	if z.PendingNeeds == nil || z.CoveredNeeds == nil {
		t.Fatalf("need lists must never be nil: %#v", z)
	}
	if z.LastUpdate != domain.LastUpdateAbsent {
		t.Fatalf("expected %q, got %q", domain.LastUpdateAbsent, z.LastUpdate)
	}
	if z.Status != domain.ZoneNeeded {
		t.Fatalf("expected derived status needed, got %q", z.Status)
	}
	if z.ID != "zone_0" {
		t.Fatalf("expected id from key, got %q", z.ID)
	}
}

func TestZoneRepository_List_DropsNullSlots(t *testing.T) {
	t.Parallel()

	repo := storedZones(t, `{"zone_0":{"name":"Paiporta","volunteer_count":3},"zone_1":null}`)

	zones, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(zones) != 1 {
		t.Fatalf("expected 1 zone, got %d", len(zones))
	}
}

func TestZoneRepository_List_LegacyArrayLayout(t *testing.T) {
	t.Parallel()

	repo := storedZones(t, `[{"name":"A","volunteer_count":60},null,{"name":"C","volunteer_count":200}]`)

	zones, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	got := make([]string, 0, len(zones))
	for _, z := range zones {
		got = append(got, z.ID+":"+string(z.Status))
	}
	want := []string{"zone_0:optimal", "zone_2:overflow"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected zones (-want +got):\n%s", diff)
	}
}

func TestZoneRepository_List_SparseIndexKeys(t *testing.T) {
	t.Parallel()

	repo := storedZones(t, `{"0":{"name":"A"},"3":{"name":"D"},"zone_5":{"name":"F"}}`)

	zones, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	got := make([]string, 0, len(zones))
	for _, z := range zones {
		got = append(got, z.ID)
	}
	if diff := cmp.Diff([]string{"zone_0", "zone_3", "zone_5"}, got); diff != "" {
		t.Fatalf("unexpected ids (-want +got):\n%s", diff)
	}
}

func TestZoneRepository_LegacyArrayLayout_MutationsByListedID(t *testing.T) {
	t.Parallel()

	repo, tree := newZones(t)
	ctx := context.Background()

	if err := tree.Put(ctx, "zones", []any{
		map[string]any{"name": "A", "volunteer_count": 10},
		map[string]any{"name": "B", "volunteer_count": 60},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	listed, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 2 || listed[1].ID != "zone_1" || listed[1].Name != "B" {
		t.Fatalf("unexpected listing %+v", listed)
	}

	got, err := repo.Get(ctx, listed[1].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "B" || got.Status != domain.ZoneOptimal {
		t.Fatalf("unexpected zone %+v", got)
	}

	upd, err := repo.Update(ctx, "zone_1", domain.UpdateZoneRequest{VolunteerCount: intPtr(200)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if upd.Zone.Status != domain.ZoneOverflow || upd.PreviousStatus != domain.ZoneOptimal {
		t.Fatalf("unexpected update %+v", upd)
	}

	if err := repo.Edit(ctx, "zone_0", domain.EditZoneRequest{Name: strPtr("Alfafar")}); err != nil {
		t.Fatalf("edit: %v", err)
	}

	listed, err = repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 zones, got %+v", listed)
	}
	if listed[0].Name != "Alfafar" || listed[0].VolunteerCount != 10 {
		t.Fatalf("unexpected zone_0 %+v", listed[0])
	}
	if listed[1].VolunteerCount != 200 || listed[1].Status != domain.ZoneOverflow {
		t.Fatalf("unexpected zone_1 %+v", listed[1])
	}

	if err := repo.Delete(ctx, "zone_1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, "zone_1"); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	next := mustCreate(t, repo, "Sedavi")
	if next.ID != "zone_2" {
		t.Fatalf("expected zone_2 after deleting zone_1, got %q", next.ID)
	}
}

func TestZoneRepository_List_ClampsOversizedCount(t *testing.T) {
	t.Parallel()

	repo := storedZones(t, `{"zone_0":{"name":"A","volunteer_count":1e20},"zone_1":{"name":"B","volunteer_count":1e400}}`)

	zones, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(zones) != 2 {
		t.Fatalf("expected 2 zones, got %+v", zones)
	}
	if zones[0].VolunteerCount != math.MaxInt32 || zones[0].Status != domain.ZoneOverflow {
		t.Fatalf("expected clamped count, got %+v", zones[0])
	}
	// out of float range is a bad field and falls back to zero
	if zones[1].VolunteerCount != 0 || zones[1].Status != domain.ZoneNeeded {
		t.Fatalf("expected default count, got %+v", zones[1])
	}
}

func TestZoneRepository_List_OrdersByNumericSuffix(t *testing.T) {
	t.Parallel()

	repo := storedZones(t, `{"zone_10":{"name":"J"},"zone_2":{"name":"B"},"zone_1":{"name":"A"}}`)

	zones, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(zones) != 3 || zones[0].ID != "zone_1" || zones[1].ID != "zone_2" || zones[2].ID != "zone_10" {
		t.Fatalf("unexpected order: %+v", zones)
	}
}

func TestZoneRepository_List_CorruptRecordDoesNotHideOthers(t *testing.T) {
	t.Parallel()

	repo := storedZones(t, `{"zone_0":"garbage","zone_1":{"name":"Sedaví","volunteer_count":"lots","pending_needs":["Water",null,"Food"]}}`)

	zones, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(zones) != 1 {
		t.Fatalf("expected 1 zone, got %d", len(zones))
	}
	z := zones[0]
	if z.VolunteerCount != 0 || z.Status != domain.ZoneNeeded {
		t.Fatalf("bad count should fall back to 0/needed, got %d %q", z.VolunteerCount, z.Status)
	}
	if diff := cmp.Diff([]string{"Water", "Food"}, z.PendingNeeds); diff != "" {
		t.Fatalf("unexpected needs (-want +got):\n%s", diff)
	}
}

func TestZoneRepository_List_KeepsValidStoredStatus(t *testing.T) {
	t.Parallel()

	repo := storedZones(t, `{"zone_0":{"name":"A","volunteer_count":10,"status":"optimal"},"zone_1":{"name":"B","volunteer_count":10,"status":"busy"}}`)

	zones, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if zones[0].Status != domain.ZoneOptimal {
		t.Fatalf("expected stored status kept, got %q", zones[0].Status)
	}
	if zones[1].Status != domain.ZoneNeeded {
		t.Fatalf("expected unknown status derived, got %q", zones[1].Status)
	}
}

func TestZoneRepository_List_NotACollection(t *testing.T) {
	t.Parallel()

	repo := storedZones(t, `"zones"`)

	_, err := repo.List(context.Background())
	if !errors.Is(err, e.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
}

func TestZoneRepository_StoreUnavailable(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_service.NewMockStore(ctrl)
	store.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(nil, &e.StoreError{Op: "GET", Path: "zones", Status: 503}).
		AnyTimes()

	repo := service.NewZoneRepository(store, newTestLogger(), valencia)
	ctx := context.Background()

	if _, err := repo.List(ctx); !errors.Is(err, e.ErrStoreUnavailable) {
		t.Fatalf("list: expected ErrStoreUnavailable, got %v", err)
	}
	if _, err := repo.Create(ctx, domain.CreateZoneRequest{Name: "X"}); !errors.Is(err, e.ErrStoreUnavailable) {
		t.Fatalf("create: expected ErrStoreUnavailable, got %v", err)
	}
	if _, err := repo.Update(ctx, "zone_0", domain.UpdateZoneRequest{VolunteerCount: intPtr(1)}); !errors.Is(err, e.ErrStoreUnavailable) {
		t.Fatalf("update: expected ErrStoreUnavailable, got %v", err)
	}
}

func TestZoneRepository_Create_WriteFailureReturnsNoZone(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_service.NewMockStore(ctrl)
	store.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	store.EXPECT().
		Put(gomock.Any(), "zones/zone_0", gomock.Any()).
		Return(&e.StoreError{Op: "PUT", Path: "zones/zone_0", Status: 500}).
		Times(1)

	repo := service.NewZoneRepository(store, newTestLogger(), valencia)

	z, err := repo.Create(context.Background(), domain.CreateZoneRequest{Name: "Alfafar"})
	if !errors.Is(err, e.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
	if z != nil {
		t.Fatalf("expected no zone on failed write, got %+v", z)
	}
}

// --- Update ---

func TestZoneRepository_Update_PreservesUntouchedFields(t *testing.T) {
	t.Parallel()

	repo, _ := newZones(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.CreateZoneRequest{
		Name:        "Benetússer",
		Latitude:    f64ptr(39.4222),
		Longitude:   f64ptr(-0.3960),
		AccessNotes: "Only by foot",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	upd, err := repo.Update(ctx, created.ID, domain.UpdateZoneRequest{VolunteerCount: intPtr(80)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if upd.Zone.Status != domain.ZoneOptimal || upd.PreviousStatus != domain.ZoneNeeded || !upd.StatusChanged() {
		t.Fatalf("unexpected update result: %+v", upd)
	}

	got, err := repo.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != created.Name || got.Latitude != created.Latitude || got.Longitude != created.Longitude || got.AccessNotes != created.AccessNotes {
		t.Fatalf("identity fields changed: before=%+v after=%+v", created, got)
	}
	if got.VolunteerCount != 80 || got.Status != domain.ZoneOptimal {
		t.Fatalf("expected 80/optimal, got %d/%q", got.VolunteerCount, got.Status)
	}
}

func TestZoneRepository_Update_StatusBoundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		count int
		want  domain.ZoneStatus
	}{
		{0, domain.ZoneNeeded},
		{49, domain.ZoneNeeded},
		{50, domain.ZoneOptimal},
		{150, domain.ZoneOptimal},
		{151, domain.ZoneOverflow},
	}

	for _, c := range cases {
		c := c
		t.Run(string(c.want), func(t *testing.T) {
			t.Parallel()

			repo, _ := newZones(t)
			z := mustCreate(t, repo, "Zone")

			upd, err := repo.Update(context.Background(), z.ID, domain.UpdateZoneRequest{VolunteerCount: intPtr(c.count)})
			if err != nil {
				t.Fatalf("update: %v", err)
			}
			if upd.Zone.Status != c.want {
				t.Fatalf("count %d: expected %q, got %q", c.count, c.want, upd.Zone.Status)
			}
		})
	}
}

func TestZoneRepository_Update_NeedsWithoutCountKeepStatus(t *testing.T) {
	t.Parallel()

	repo, _ := newZones(t)
	ctx := context.Background()
	z := mustCreate(t, repo, "Alfafar")

	if _, err := repo.Update(ctx, z.ID, domain.UpdateZoneRequest{VolunteerCount: intPtr(200)}); err != nil {
		t.Fatalf("update count: %v", err)
	}
	upd, err := repo.Update(ctx, z.ID, domain.UpdateZoneRequest{
		PendingNeeds: listPtr("<i>Water</i>", "  ", "Food"),
		CoveredNeeds: listPtr("Water"),
	})
	if err != nil {
		t.Fatalf("update needs: %v", err)
	}
	if upd.StatusChanged() || upd.Zone.Status != domain.ZoneOverflow {
		t.Fatalf("status should stay overflow: %+v", upd)
	}

	got, err := repo.Get(ctx, z.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if diff := cmp.Diff([]string{"Water", "Food"}, got.PendingNeeds); diff != "" {
		t.Fatalf("pending needs (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Water"}, got.CoveredNeeds); diff != "" {
		t.Fatalf("covered needs (-want +got):\n%s", diff)
	}
	if got.VolunteerCount != 200 {
		t.Fatalf("count must be preserved, got %d", got.VolunteerCount)
	}
}

func TestZoneRepository_Update_ClearsNeeds(t *testing.T) {
	t.Parallel()

	repo, _ := newZones(t)
	ctx := context.Background()
	z := mustCreate(t, repo, "Paiporta")

	if _, err := repo.Update(ctx, z.ID, domain.UpdateZoneRequest{PendingNeeds: listPtr("Water")}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if _, err := repo.Update(ctx, z.ID, domain.UpdateZoneRequest{PendingNeeds: listPtr()}); err != nil {
		t.Fatalf("clear: %v", err)
	}

	got, err := repo.Get(ctx, z.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.PendingNeeds == nil || len(got.PendingNeeds) != 0 {
		t.Fatalf("expected empty needs, got %#v", got.PendingNeeds)
	}
}

func TestZoneRepository_Update_MissingZone(t *testing.T) {
	t.Parallel()

	repo, tree := newZones(t)
	ctx := context.Background()

	_, err := repo.Update(ctx, "zone_9", domain.UpdateZoneRequest{VolunteerCount: intPtr(5)})
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	raw, err := tree.Get(ctx, "zones/zone_9")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if raw != nil {
		t.Fatalf("update of a missing zone must not create it, got %s", raw)
	}
}

func TestZoneRepository_Update_InvalidInput(t *testing.T) {
	t.Parallel()

	repo, _ := newZones(t)
	z := mustCreate(t, repo, "Sedaví")
	ctx := context.Background()

	if _, err := repo.Update(ctx, z.ID, domain.UpdateZoneRequest{}); !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("empty update: expected ErrInvalidInput, got %v", err)
	}
	if _, err := repo.Update(ctx, z.ID, domain.UpdateZoneRequest{VolunteerCount: intPtr(-1)}); !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("negative count: expected ErrInvalidInput, got %v", err)
	}
	if _, err := repo.Update(ctx, "zone_x", domain.UpdateZoneRequest{VolunteerCount: intPtr(1)}); !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("malformed id: expected ErrInvalidInput, got %v", err)
	}
}

func TestZoneRepository_Update_AcceptsBareID(t *testing.T) {
	t.Parallel()

	repo, _ := newZones(t)
	mustCreate(t, repo, "Aldaia")

	upd, err := repo.Update(context.Background(), "0", domain.UpdateZoneRequest{VolunteerCount: intPtr(51)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if upd.Zone.ID != "zone_0" {
		t.Fatalf("expected zone_0, got %q", upd.Zone.ID)
	}
}

// --- Edit / Delete ---

func TestZoneRepository_Edit_LeavesOperationalFields(t *testing.T) {
	t.Parallel()

	repo, _ := newZones(t)
	ctx := context.Background()
	z := mustCreate(t, repo, "Masanasa")

	if _, err := repo.Update(ctx, z.ID, domain.UpdateZoneRequest{
		VolunteerCount: intPtr(120),
		PendingNeeds:   listPtr("Shovels"),
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	if err := repo.Edit(ctx, z.ID, domain.EditZoneRequest{
		Name:      strPtr("Massanassa"),
		Latitude:  f64ptr(39.4111),
		Longitude: f64ptr(-0.4000),
	}); err != nil {
		t.Fatalf("edit: %v", err)
	}

	got, err := repo.Get(ctx, z.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Massanassa" || got.Latitude != 39.4111 || got.Longitude != -0.4000 {
		t.Fatalf("identity not edited: %+v", got)
	}
	if got.VolunteerCount != 120 || got.Status != domain.ZoneOptimal {
		t.Fatalf("operational fields changed: %+v", got)
	}
	if diff := cmp.Diff([]string{"Shovels"}, got.PendingNeeds); diff != "" {
		t.Fatalf("needs changed (-want +got):\n%s", diff)
	}
}

func TestZoneRepository_Edit_Errors(t *testing.T) {
	t.Parallel()

	repo, _ := newZones(t)
	ctx := context.Background()
	z := mustCreate(t, repo, "Picanya")

	if err := repo.Edit(ctx, z.ID, domain.EditZoneRequest{}); !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("empty edit: expected ErrInvalidInput, got %v", err)
	}
	if err := repo.Edit(ctx, z.ID, domain.EditZoneRequest{Longitude: f64ptr(200)}); !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("bad longitude: expected ErrInvalidCoordinates, got %v", err)
	}
	if err := repo.Edit(ctx, "zone_7", domain.EditZoneRequest{Name: strPtr("x")}); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("missing zone: expected ErrNotFound, got %v", err)
	}
}

func TestZoneRepository_Delete(t *testing.T) {
	t.Parallel()

	repo, _ := newZones(t)
	ctx := context.Background()
	z := mustCreate(t, repo, "Torrent")

	if err := repo.Delete(ctx, z.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, z.ID); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, z.ID); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}
}

// --- Restructure ---

func TestZoneRepository_Restructure_ArrayToKeyed(t *testing.T) {
	t.Parallel()

	repo, tree := newZones(t)
	ctx := context.Background()

	if err := tree.Put(ctx, "zones", []any{
		map[string]any{"name": "A", "volunteer_count": 70},
		nil,
		map[string]any{"name": "C"},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	n, err := repo.Restructure(ctx)
	if err != nil {
		t.Fatalf("restructure: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 zones, got %d", n)
	}

	raw, err := tree.Get(ctx, "zones")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	var keyed map[string]map[string]any
	if err := json.Unmarshal(raw, &keyed); err != nil {
		t.Fatalf("expected keyed layout, got %s: %v", raw, err)
	}
	if _, ok := keyed["zone_0"]; !ok {
		t.Fatalf("zone_0 missing: %s", raw)
	}
	if _, ok := keyed["zone_2"]; !ok {
		t.Fatalf("zone_2 missing: %s", raw)
	}
	if keyed["zone_0"]["status"] != string(domain.ZoneOptimal) {
		t.Fatalf("expected status written, got %v", keyed["zone_0"]["status"])
	}

	z := mustCreate(t, repo, "D")
	if z.ID != "zone_3" {
		t.Fatalf("expected zone_3 after restructure, got %q", z.ID)
	}
}

func TestZoneRepository_Restructure_Empty(t *testing.T) {
	t.Parallel()

	repo, _ := newZones(t)
	n, err := repo.Restructure(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0, got %d", n)
	}
}
