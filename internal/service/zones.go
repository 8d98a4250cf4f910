package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/domain"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/pkg/e"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/pkg/sanitize"
)

const (
	zonesPath   = "zones"
	zoneSeqPath = "meta/zone_seq"
)

// ZoneRepository owns zone records in the remote store. Status derivation
// and default filling happen here and nowhere else.
type ZoneRepository struct {
	store  Store
	logger *slog.Logger
	center domain.Coordinates
	now    func() time.Time
}

func NewZoneRepository(store Store, logger *slog.Logger, center domain.Coordinates) *ZoneRepository {
	return &ZoneRepository{
		store:  store,
		logger: logger,
		center: center,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *ZoneRepository) timestamp() string {
	return r.now().Format(time.RFC3339)
}

func zonePath(id string) string {
	return zonesPath + "/" + id
}

type collectionEntry struct {
	key string
	raw json.RawMessage
}

// splitCollection accepts both the keyed object layout and the legacy
// array layout in which deleted slots come back as null.
func splitCollection(raw json.RawMessage) ([]collectionEntry, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	switch raw[0] {
	case '{':
		var m map[string]json.RawMessage
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("%w: %v", e.ErrInvalidState, err)
		}
		out := make([]collectionEntry, 0, len(m))
		for k, v := range m {
			out = append(out, collectionEntry{key: legacyKey(k), raw: v})
		}
		return out, nil
	case '[':
		var arr []json.RawMessage
		if err := json.Unmarshal(raw, &arr); err != nil {
			return nil, fmt.Errorf("%w: %v", e.ErrInvalidState, err)
		}
		out := make([]collectionEntry, 0, len(arr))
		for i, v := range arr {
			out = append(out, collectionEntry{key: domain.ZoneID(i), raw: v})
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: collection is not an object", e.ErrInvalidState)
}

// legacyKey names a bare index key the way List reports it. The store
// returns sparse arrays as objects keyed "0", "3", ...
func legacyKey(k string) string {
	if n, err := strconv.Atoi(k); err == nil && n >= 0 && strconv.Itoa(n) == k {
		return domain.ZoneID(n)
	}
	return k
}

func isNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// decodeZone builds a zone from a stored record field by field, so one bad
// field costs a default value instead of the whole record.
func (r *ZoneRepository) decodeZone(id string, raw json.RawMessage) (domain.Zone, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		r.logger.Warn("skipping malformed zone record", slog.String("id", id), slog.Any("error", err))
		return domain.Zone{}, false
	}

	z := domain.Zone{ID: id}
	bad := func(field string, err error) {
		r.logger.Warn("zone field reset to default",
			slog.String("id", id),
			slog.String("field", field),
			slog.Any("error", err),
		)
	}

	if v, ok := fields["name"]; ok && !isNull(v) {
		if err := json.Unmarshal(v, &z.Name); err != nil {
			bad("name", err)
		}
	}
	if v, ok := fields["latitude"]; ok && !isNull(v) {
		if err := json.Unmarshal(v, &z.Latitude); err != nil {
			bad("latitude", err)
		}
	}
	if v, ok := fields["longitude"]; ok && !isNull(v) {
		if err := json.Unmarshal(v, &z.Longitude); err != nil {
			bad("longitude", err)
		}
	}
	if v, ok := fields["volunteer_count"]; ok && !isNull(v) {
		var f float64
		if err := json.Unmarshal(v, &f); err != nil {
			bad("volunteer_count", err)
		} else if f > math.MaxInt32 {
			z.VolunteerCount = math.MaxInt32
		} else if f > 0 {
			z.VolunteerCount = int(f)
		}
	}
	if v, ok := fields["access_notes"]; ok && !isNull(v) {
		if err := json.Unmarshal(v, &z.AccessNotes); err != nil {
			bad("access_notes", err)
		}
	}
	if v, ok := fields["last_update"]; ok && !isNull(v) {
		if err := json.Unmarshal(v, &z.LastUpdate); err != nil {
			bad("last_update", err)
		}
	}
	if z.LastUpdate == "" {
		z.LastUpdate = domain.LastUpdateAbsent
	}

	var err error
	if z.PendingNeeds, err = decodeLabels(fields["pending_needs"]); err != nil {
		bad("pending_needs", err)
	}
	if z.CoveredNeeds, err = decodeLabels(fields["covered_needs"]); err != nil {
		bad("covered_needs", err)
	}

	if v, ok := fields["status"]; ok && !isNull(v) {
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			z.Status = domain.ZoneStatus(s)
		}
	}
	if !z.Status.Valid() {
		z.Status = domain.ClassifyStatus(z.VolunteerCount)
	}

	return z, true
}

// decodeLabels reads a need list that may be absent, null, an array with
// null holes, or the keyed object the store produces for sparse arrays.
// The result is never nil.
func decodeLabels(raw json.RawMessage) ([]string, error) {
	out := []string{}
	if isNull(raw) {
		return out, nil
	}
	raw = bytes.TrimSpace(raw)

	var items []json.RawMessage
	switch raw[0] {
	case '[':
		if err := json.Unmarshal(raw, &items); err != nil {
			return out, err
		}
	case '{':
		var m map[string]json.RawMessage
		if err := json.Unmarshal(raw, &m); err != nil {
			return out, err
		}
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool { return lessNumeric(keys[i], keys[j]) })
		for _, k := range keys {
			items = append(items, m[k])
		}
	default:
		return out, fmt.Errorf("unexpected need list %s", raw)
	}

	for _, item := range items {
		var s string
		if json.Unmarshal(item, &s) == nil && s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

func lessNumeric(a, b string) bool {
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)
	if aerr == nil && berr == nil {
		return ai < bi
	}
	if (aerr == nil) != (berr == nil) {
		return aerr == nil
	}
	return a < b
}

func sortZones(zones []domain.Zone) {
	sort.SliceStable(zones, func(i, j int) bool {
		a, aok := domain.ZoneSeq(zones[i].ID)
		b, bok := domain.ZoneSeq(zones[j].ID)
		if aok && bok {
			return a < b
		}
		if aok != bok {
			return aok
		}
		return zones[i].ID < zones[j].ID
	})
}

func (r *ZoneRepository) load(ctx context.Context, op string) ([]domain.Zone, error) {
	raw, err := r.store.Get(ctx, zonesPath)
	if err != nil {
		r.logger.Error("store get failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	entries, err := splitCollection(raw)
	if err != nil {
		r.logger.Error("zone collection unreadable", slog.String("op", op), slog.Any("error", err))
		return nil, e.Wrap(op, err)
	}

	zones := make([]domain.Zone, 0, len(entries))
	for _, entry := range entries {
		if isNull(entry.raw) {
			continue
		}
		if z, ok := r.decodeZone(entry.key, entry.raw); ok {
			zones = append(zones, z)
		}
	}
	sortZones(zones)
	return zones, nil
}

// List returns every stored zone ordered by id. An empty or missing
// collection is an empty slice.
func (r *ZoneRepository) List(ctx context.Context) ([]domain.Zone, error) {
	return r.load(ctx, "service.Zones.List")
}

func (r *ZoneRepository) Get(ctx context.Context, id string) (*domain.Zone, error) {
	z, _, err := r.locate(ctx, "service.Zones.Get", id)
	return z, err
}

// locate returns the zone and the store path holding it. Collections
// written as arrays keep zone_N at index N, so that path is tried when the
// keyed one is empty.
func (r *ZoneRepository) locate(ctx context.Context, op, id string) (*domain.Zone, string, error) {
	id, err := domain.NormalizeZoneID(id)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w: %v", op, e.ErrInvalidInput, err)
	}
	seq, _ := domain.ZoneSeq(id)

	var (
		raw  json.RawMessage
		path string
	)
	for _, candidate := range []string{zonePath(id), zonesPath + "/" + strconv.Itoa(seq)} {
		raw, err = r.store.Get(ctx, candidate)
		if err != nil {
			r.logger.Error("store get failed", slog.String("op", op), slog.String("id", id), slog.Any("error", err))
			return nil, "", e.WrapError(ctx, op, err)
		}
		if !isNull(raw) {
			path = candidate
			break
		}
	}
	if path == "" {
		return nil, "", fmt.Errorf("%s: %s: %w", op, id, e.ErrZoneNotFound)
	}

	z, ok := r.decodeZone(id, raw)
	if !ok {
		return nil, "", fmt.Errorf("%s: zone %s: %w", op, id, e.ErrInvalidState)
	}
	return &z, path, nil
}

// nextSeq picks the id for a new zone. The persisted high-water mark keeps
// ids of deleted zones from being handed out again.
func (r *ZoneRepository) nextSeq(ctx context.Context, op string) (int, error) {
	raw, err := r.store.Get(ctx, zonesPath)
	if err != nil {
		return 0, e.WrapError(ctx, op, err)
	}
	entries, err := splitCollection(raw)
	if err != nil {
		return 0, e.Wrap(op, err)
	}

	next := 0
	for _, entry := range entries {
		if isNull(entry.raw) {
			continue
		}
		if n, ok := domain.ZoneSeq(entry.key); ok && n+1 > next {
			next = n + 1
		}
	}

	mark, err := r.readSeq(ctx)
	if err != nil {
		return 0, e.WrapError(ctx, op, err)
	}
	if mark > next {
		next = mark
	}
	return next, nil
}

func (r *ZoneRepository) readSeq(ctx context.Context) (int, error) {
	raw, err := r.store.Get(ctx, zoneSeqPath)
	if err != nil {
		return 0, err
	}
	if isNull(raw) {
		return 0, nil
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil || n < 0 {
		r.logger.Warn("ignoring malformed zone sequence", slog.String("raw", string(raw)))
		return 0, nil
	}
	return int(n), nil
}

func (r *ZoneRepository) advanceSeq(ctx context.Context, next int) {
	current, err := r.readSeq(ctx)
	if err == nil && current >= next {
		return
	}
	if err := r.store.Put(ctx, zoneSeqPath, next); err != nil {
		r.logger.Warn("zone sequence not advanced", slog.Int("next", next), slog.Any("error", err))
	}
}

func validCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// Create stores a new zone with zero volunteers and returns it once the
// store has acknowledged the write.
func (r *ZoneRepository) Create(ctx context.Context, req domain.CreateZoneRequest) (*domain.Zone, error) {
	const op = "service.Zones.Create"

	name := sanitize.Text(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%s: name required: %w", op, e.ErrInvalidInput)
	}
	lat, lon := r.center.Lat, r.center.Lon
	if req.Latitude != nil {
		lat = *req.Latitude
	}
	if req.Longitude != nil {
		lon = *req.Longitude
	}
	if !validCoordinates(lat, lon) {
		return nil, fmt.Errorf("%s: %w: %w", op, e.ErrInvalidInput, e.ErrInvalidCoordinates)
	}

	seq, err := r.nextSeq(ctx, op)
	if err != nil {
		r.logger.Error("zone id allocation failed", slog.String("op", op), slog.Any("error", err))
		return nil, err
	}

	zone := domain.Zone{
		ID:             domain.ZoneID(seq),
		Name:           name,
		Latitude:       lat,
		Longitude:      lon,
		VolunteerCount: 0,
		Status:         domain.ClassifyStatus(0),
		AccessNotes:    sanitize.Text(req.AccessNotes),
		PendingNeeds:   []string{},
		CoveredNeeds:   []string{},
		LastUpdate:     r.timestamp(),
	}

	if err := r.store.Put(ctx, zonePath(zone.ID), zone); err != nil {
		r.logger.Error("store put failed", slog.String("op", op), slog.String("id", zone.ID), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	r.advanceSeq(ctx, seq+1)

	r.logger.Info("zone created", slog.String("id", zone.ID), slog.String("name", zone.Name))
	return &zone, nil
}

// Update applies a coordinator edit as a partial merge. Fields left nil in
// req keep their stored values.
func (r *ZoneRepository) Update(ctx context.Context, id string, req domain.UpdateZoneRequest) (*domain.ZoneUpdate, error) {
	const op = "service.Zones.Update"

	if req.Empty() {
		return nil, fmt.Errorf("%s: nothing to update: %w", op, e.ErrInvalidInput)
	}
	if req.VolunteerCount != nil && *req.VolunteerCount < 0 {
		return nil, fmt.Errorf("%s: negative volunteer count: %w", op, e.ErrInvalidInput)
	}

	current, path, err := r.locate(ctx, op, id)
	if err != nil {
		return nil, err
	}

	merged := *current
	merged.LastUpdate = r.timestamp()
	patch := map[string]any{"last_update": merged.LastUpdate}

	if req.VolunteerCount != nil {
		merged.VolunteerCount = *req.VolunteerCount
		merged.Status = domain.ClassifyStatus(merged.VolunteerCount)
		patch["volunteer_count"] = merged.VolunteerCount
		patch["status"] = merged.Status
	}
	if req.AccessNotes != nil {
		merged.AccessNotes = sanitize.Text(*req.AccessNotes)
		patch["access_notes"] = merged.AccessNotes
	}
	if req.PendingNeeds != nil {
		merged.PendingNeeds = sanitize.Labels(*req.PendingNeeds)
		patch["pending_needs"] = merged.PendingNeeds
	}
	if req.CoveredNeeds != nil {
		merged.CoveredNeeds = sanitize.Labels(*req.CoveredNeeds)
		patch["covered_needs"] = merged.CoveredNeeds
	}

	if both := overlap(merged.PendingNeeds, merged.CoveredNeeds); len(both) > 0 {
		r.logger.Warn("need listed as both pending and covered",
			slog.String("id", merged.ID),
			slog.Any("needs", both),
		)
	}

	if err := r.store.Patch(ctx, path, patch); err != nil {
		r.logger.Error("store patch failed", slog.String("op", op), slog.String("id", merged.ID), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return &domain.ZoneUpdate{Zone: merged, PreviousStatus: current.Status}, nil
}

func overlap(a, b []string) []string {
	seen := make(map[string]struct{}, len(a))
	for _, s := range a {
		seen[s] = struct{}{}
	}
	var out []string
	for _, s := range b {
		if _, ok := seen[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

// Edit changes identity fields only. Count, status and needs are untouched.
func (r *ZoneRepository) Edit(ctx context.Context, id string, req domain.EditZoneRequest) error {
	const op = "service.Zones.Edit"

	if req.Empty() {
		return fmt.Errorf("%s: nothing to edit: %w", op, e.ErrInvalidInput)
	}

	current, path, err := r.locate(ctx, op, id)
	if err != nil {
		return err
	}

	patch := map[string]any{"last_update": r.timestamp()}
	if req.Name != nil {
		name := sanitize.Text(*req.Name)
		if name == "" {
			return fmt.Errorf("%s: name required: %w", op, e.ErrInvalidInput)
		}
		patch["name"] = name
	}
	lat, lon := current.Latitude, current.Longitude
	if req.Latitude != nil {
		lat = *req.Latitude
		patch["latitude"] = lat
	}
	if req.Longitude != nil {
		lon = *req.Longitude
		patch["longitude"] = lon
	}
	if !validCoordinates(lat, lon) {
		return fmt.Errorf("%s: %w: %w", op, e.ErrInvalidInput, e.ErrInvalidCoordinates)
	}
	if req.AccessNotes != nil {
		patch["access_notes"] = sanitize.Text(*req.AccessNotes)
	}

	if err := r.store.Patch(ctx, path, patch); err != nil {
		r.logger.Error("store patch failed", slog.String("op", op), slog.String("id", current.ID), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

// Delete removes the zone permanently. Its id is never reused.
func (r *ZoneRepository) Delete(ctx context.Context, id string) error {
	const op = "service.Zones.Delete"

	current, path, err := r.locate(ctx, op, id)
	if err != nil {
		return err
	}
	if n, ok := domain.ZoneSeq(current.ID); ok {
		r.advanceSeq(ctx, n+1)
	}
	if err := r.store.Delete(ctx, path); err != nil {
		r.logger.Error("store delete failed", slog.String("op", op), slog.String("id", current.ID), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	r.logger.Info("zone deleted", slog.String("id", current.ID))
	return nil
}

// Restructure rewrites the collection into the keyed layout with every
// record normalized, and lifts the id high-water mark past the largest id.
func (r *ZoneRepository) Restructure(ctx context.Context) (int, error) {
	const op = "service.Zones.Restructure"

	zones, err := r.load(ctx, op)
	if err != nil {
		return 0, err
	}
	if len(zones) == 0 {
		return 0, nil
	}

	next := 0
	out := make(map[string]domain.Zone, len(zones))
	for _, z := range zones {
		if z.LastUpdate == domain.LastUpdateAbsent {
			z.LastUpdate = r.timestamp()
		}
		out[z.ID] = z
		if n, ok := domain.ZoneSeq(z.ID); ok && n+1 > next {
			next = n + 1
		}
	}

	if err := r.store.Put(ctx, zonesPath, out); err != nil {
		r.logger.Error("store put failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}
	r.advanceSeq(ctx, next)

	r.logger.Info("zones restructured", slog.Int("count", len(out)))
	return len(out), nil
}
