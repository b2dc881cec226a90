// Package inventorytest provides an in-memory stand-in for the Spanner
// adapters so use cases and queries can be tested without an emulator.
//
// Repository mutations are staged and only become visible once the fake
// committer applies the plan, so a failing build leaves the store untouched
// exactly like an aborted read-write transaction.
package inventorytest

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/models/m_outbox"
	"github.com/light-bringer/inventory-service/internal/pkg/clock"
	"github.com/light-bringer/inventory-service/internal/pkg/committer"
)

type productRecord struct {
	id             string
	params         domain.ProductParams
	manufacturerID string
	createdAt      time.Time
	updatedAt      time.Time
}

// Store is an in-memory inventory. It implements every repository, the read
// models and contracts.Committer.
type Store struct {
	mu sync.Mutex

	clock         clock.Clock
	products      map[string]productRecord
	manufacturers map[string]*domain.Manufacturer
	contacts      map[string]*domain.Contact
	events        []contracts.OutboxEvent
	staged        []func()

	// Plans holds every applied plan, in order.
	Plans []*committer.Plan

	// CommitErr, when set, fails the next commit after the build succeeded.
	CommitErr error
}

// NewStore creates an empty Store using clk for every timestamp.
func NewStore(clk clock.Clock) *Store {
	return &Store{
		clock:         clk,
		products:      make(map[string]productRecord),
		manufacturers: make(map[string]*domain.Manufacturer),
		contacts:      make(map[string]*domain.Contact),
	}
}

func (s *Store) stage(fn func()) {
	s.staged = append(s.staged, fn)
}

func marker(table, id string) *spanner.Mutation {
	return spanner.Insert(table, []string{"id"}, []interface{}{id})
}

// ApplyInTransaction runs build with a nil reader; the fake repositories
// never touch it.
func (s *Store) ApplyInTransaction(ctx context.Context, build committer.BuildFunc) error {
	s.mu.Lock()
	s.staged = nil
	s.mu.Unlock()

	plan, err := build(ctx, nil)

	s.mu.Lock()
	defer s.mu.Unlock()
	staged := s.staged
	s.staged = nil
	if err != nil {
		return err
	}
	if s.CommitErr != nil {
		err, s.CommitErr = s.CommitErr, nil
		return err
	}
	for _, fn := range staged {
		fn()
	}
	if !plan.IsEmpty() {
		s.Plans = append(s.Plans, plan)
	}
	return nil
}

// Seed helpers

// AddManufacturer stores a manufacturer (and its contact) directly.
func (s *Store) AddManufacturer(name string, withContact bool) *domain.Manufacturer {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	var contactID *string
	if withContact {
		c, err := domain.NewContact(domain.NewID(), name+" Contact", "sales@"+strings.ToLower(name)+".example", "+1 555 0100", now)
		if err != nil {
			panic(err)
		}
		s.contacts[c.ID()] = c
		id := c.ID()
		contactID = &id
	}
	m, err := domain.NewManufacturer(domain.NewID(), domain.ManufacturerParams{
		Name:    name,
		Country: "DE",
		Website: "https://" + strings.ToLower(name) + ".example",
	}, contactID, now)
	if err != nil {
		panic(err)
	}
	s.manufacturers[m.ID()] = m
	return m
}

// AddProduct stores a product directly and returns its id.
func (s *Store) AddProduct(params domain.ProductParams, manufacturerID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	id := domain.NewID()
	s.products[id] = productRecord{id: id, params: params, manufacturerID: manufacturerID, createdAt: now, updatedAt: now}
	return id
}

// Inspection helpers

func (s *Store) ProductCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.products)
}

func (s *Store) ManufacturerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.manufacturers)
}

func (s *Store) ContactCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.contacts)
}

// Events returns the outbox rows written so far.
func (s *Store) Events() []contracts.OutboxEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]contracts.OutboxEvent(nil), s.events...)
}

// EventTypes returns the types of the outbox rows written so far.
func (s *Store) EventTypes() []string {
	events := s.Events()
	types := make([]string, 0, len(events))
	for _, e := range events {
		types = append(types, e.EventType)
	}
	return types
}

// Products returns a ProductRepository view of the store.
func (s *Store) Products() contracts.ProductRepository { return productRepo{s} }

// Manufacturers returns a ManufacturerRepository view of the store.
func (s *Store) Manufacturers() contracts.ManufacturerRepository { return manufacturerRepo{s} }

// Contacts returns a ContactRepository view of the store.
func (s *Store) Contacts() contracts.ContactRepository { return contactRepo{s} }

// Outbox returns an OutboxRepository view of the store.
func (s *Store) Outbox() contracts.OutboxRepository { return outboxRepo{s} }

type productRepo struct{ s *Store }

func (r productRepo) InsertMut(p *domain.Product) *spanner.Mutation {
	rec := productRecord{
		id:             p.ID(),
		params:         paramsOf(p),
		manufacturerID: p.ManufacturerID(),
		createdAt:      p.CreatedAt(),
		updatedAt:      p.UpdatedAt(),
	}
	r.s.mu.Lock()
	r.s.stage(func() { r.s.products[rec.id] = rec })
	r.s.mu.Unlock()
	return marker("products", rec.id)
}

func (r productRepo) UpdateMut(p *domain.Product) *spanner.Mutation {
	if !p.Changes().HasChanges() {
		return nil
	}
	rec := productRecord{
		id:             p.ID(),
		params:         paramsOf(p),
		manufacturerID: p.ManufacturerID(),
		createdAt:      p.CreatedAt(),
		updatedAt:      p.UpdatedAt(),
	}
	r.s.mu.Lock()
	r.s.stage(func() { r.s.products[rec.id] = rec })
	r.s.mu.Unlock()
	return spanner.Update("products", []string{"id"}, []interface{}{rec.id})
}

func (r productRepo) DeleteMut(productID string) *spanner.Mutation {
	r.s.mu.Lock()
	r.s.stage(func() { delete(r.s.products, productID) })
	r.s.mu.Unlock()
	return spanner.Delete("products", spanner.Key{productID})
}

func (r productRepo) GetByID(_ context.Context, _ committer.Reader, productID string) (*domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec, ok := r.s.products[productID]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return domain.ReconstructProduct(rec.id, rec.params, rec.manufacturerID, rec.createdAt, rec.updatedAt, r.s.clock), nil
}

func (r productRepo) FindIDBySKU(_ context.Context, _ committer.Reader, sku string) (string, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, rec := range r.s.products {
		if rec.params.SKU == sku {
			return id, true, nil
		}
	}
	return "", false, nil
}

type manufacturerRepo struct{ s *Store }

func (r manufacturerRepo) InsertMut(m *domain.Manufacturer) *spanner.Mutation {
	r.s.mu.Lock()
	r.s.stage(func() { r.s.manufacturers[m.ID()] = m })
	r.s.mu.Unlock()
	return marker("manufacturers", m.ID())
}

func (r manufacturerRepo) Exists(_ context.Context, _ committer.Reader, manufacturerID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.manufacturers[manufacturerID]
	return ok, nil
}

func (r manufacturerRepo) NameTaken(_ context.Context, _ committer.Reader, name string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.manufacturers {
		if m.Name() == name {
			return true, nil
		}
	}
	return false, nil
}

type contactRepo struct{ s *Store }

func (r contactRepo) InsertMut(c *domain.Contact) *spanner.Mutation {
	r.s.mu.Lock()
	r.s.stage(func() { r.s.contacts[c.ID()] = c })
	r.s.mu.Unlock()
	return marker("contacts", c.ID())
}

type outboxRepo struct{ s *Store }

func (r outboxRepo) InsertMut(event *contracts.OutboxEvent) *spanner.Mutation {
	ev := *event
	r.s.mu.Lock()
	r.s.stage(func() { r.s.events = append(r.s.events, ev) })
	r.s.mu.Unlock()
	return marker("outbox_events", ev.EventID)
}

func (r outboxRepo) Pending(event domain.DomainEvent, payload string) *contracts.OutboxEvent {
	return &contracts.OutboxEvent{
		EventID:     uuid.New().String(),
		EventType:   event.EventType(),
		AggregateID: event.AggregateID(),
		Payload:     payload,
		Status:      m_outbox.StatusPending,
	}
}

func paramsOf(p *domain.Product) domain.ProductParams {
	return domain.ProductParams{
		Name:          p.Name(),
		SKU:           p.SKU(),
		Description:   p.Description(),
		Price:         p.Price(),
		Category:      p.Category(),
		AmountInStock: p.AmountInStock(),
	}
}

// Read side

// GetProduct implements contracts.ReadModel.
func (s *Store) GetProduct(_ context.Context, productID string) (*contracts.ProductView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.products[productID]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return s.viewLocked(rec), nil
}

// ListProducts implements contracts.ReadModel with the same filter and
// ordering semantics as the Spanner read model.
func (s *Store) ListProducts(_ context.Context, filter contracts.ProductFilter) ([]*contracts.ProductView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	views := make([]*contracts.ProductView, 0)
	for _, rec := range s.products {
		p := rec.params
		if filter.Category != nil && p.Category != *filter.Category {
			continue
		}
		if filter.PriceMin != nil && p.Price < *filter.PriceMin {
			continue
		}
		if filter.PriceMax != nil && p.Price > *filter.PriceMax {
			continue
		}
		if filter.ManufacturerID != nil && rec.manufacturerID != *filter.ManufacturerID {
			continue
		}
		if filter.Search != nil {
			term := strings.ToLower(*filter.Search)
			if !strings.Contains(strings.ToLower(p.Name), term) &&
				!strings.Contains(strings.ToLower(p.Description), term) &&
				!strings.Contains(strings.ToLower(p.SKU), term) {
				continue
			}
		}
		views = append(views, s.viewLocked(rec))
	}

	sort.Slice(views, func(i, j int) bool {
		a, b := views[i], views[j]
		switch filter.Sort {
		case contracts.SortPriceAsc:
			if a.Price != b.Price {
				return a.Price < b.Price
			}
		case contracts.SortPriceDesc:
			if a.Price != b.Price {
				return a.Price > b.Price
			}
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID < b.ID
	})

	if filter.Limit > 0 && int64(len(views)) > filter.Limit {
		views = views[:filter.Limit]
	}
	return views, nil
}

// ListManufacturers implements contracts.ReadModel.
func (s *Store) ListManufacturers(_ context.Context) ([]*contracts.ManufacturerView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	views := make([]*contracts.ManufacturerView, 0, len(s.manufacturers))
	for id := range s.manufacturers {
		v := s.manufacturerViewLocked(id)
		views = append(views, &v)
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Name < views[j].Name })
	return views, nil
}

// TotalStockValue implements contracts.ReportModel.
func (s *Store) TotalStockValue(_ context.Context) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, rec := range s.products {
		total += rec.params.Price * float64(rec.params.AmountInStock)
	}
	return total, nil
}

// TotalStockValueByManufacturer implements contracts.ReportModel.
func (s *Store) TotalStockValueByManufacturer(_ context.Context) ([]*contracts.ManufacturerStockValue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	totals := make(map[string]float64)
	for _, rec := range s.products {
		totals[rec.manufacturerID] += rec.params.Price * float64(rec.params.AmountInStock)
	}

	result := make([]*contracts.ManufacturerStockValue, 0, len(totals))
	for id, total := range totals {
		result = append(result, &contracts.ManufacturerStockValue{
			Manufacturer:    s.manufacturerViewLocked(id),
			TotalStockValue: total,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].TotalStockValue != result[j].TotalStockValue {
			return result[i].TotalStockValue > result[j].TotalStockValue
		}
		return result[i].Manufacturer.Name < result[j].Manufacturer.Name
	})
	return result, nil
}

// ProductsBelowStock implements contracts.ReportModel.
func (s *Store) ProductsBelowStock(_ context.Context, threshold int64) ([]*contracts.ProductView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	views := make([]*contracts.ProductView, 0)
	for _, rec := range s.products {
		if rec.params.AmountInStock < threshold {
			views = append(views, s.viewLocked(rec))
		}
	}
	sort.Slice(views, func(i, j int) bool {
		if views[i].AmountInStock != views[j].AmountInStock {
			return views[i].AmountInStock < views[j].AmountInStock
		}
		return views[i].Name < views[j].Name
	})
	return views, nil
}

// CriticalStock implements contracts.ReportModel.
func (s *Store) CriticalStock(ctx context.Context, threshold int64) ([]*contracts.CriticalStockItem, error) {
	below, err := s.ProductsBelowStock(ctx, threshold)
	if err != nil {
		return nil, err
	}

	items := make([]*contracts.CriticalStockItem, 0, len(below))
	for _, v := range below {
		item := &contracts.CriticalStockItem{
			ProductName:      v.Name,
			ManufacturerName: v.Manufacturer.Name,
		}
		if c := v.Manufacturer.Contact; c != nil {
			item.ContactName, item.ContactPhone, item.ContactEmail = &c.Name, &c.Phone, &c.Email
		}
		items = append(items, item)
	}
	return items, nil
}

// ListEvents implements contracts.EventsReadModel, newest first.
func (s *Store) ListEvents(_ context.Context, filter contracts.EventFilter) ([]*contracts.EventView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	views := make([]*contracts.EventView, 0)
	for i := len(s.events) - 1; i >= 0; i-- {
		e := s.events[i]
		if filter.EventType != nil && e.EventType != *filter.EventType {
			continue
		}
		if filter.AggregateID != nil && e.AggregateID != *filter.AggregateID {
			continue
		}
		if filter.Status != nil && e.Status != *filter.Status {
			continue
		}
		views = append(views, &contracts.EventView{
			EventID:     e.EventID,
			EventType:   e.EventType,
			AggregateID: e.AggregateID,
			Payload:     e.Payload,
			Status:      e.Status,
			CreatedAt:   s.clock.Now(),
		})
		if filter.Limit > 0 && int64(len(views)) == filter.Limit {
			break
		}
	}
	return views, nil
}

func (s *Store) viewLocked(rec productRecord) *contracts.ProductView {
	return &contracts.ProductView{
		ID:            rec.id,
		Name:          rec.params.Name,
		SKU:           rec.params.SKU,
		Description:   rec.params.Description,
		Price:         rec.params.Price,
		Category:      rec.params.Category,
		AmountInStock: rec.params.AmountInStock,
		Manufacturer:  s.manufacturerViewLocked(rec.manufacturerID),
		CreatedAt:     rec.createdAt,
		UpdatedAt:     rec.updatedAt,
	}
}

func (s *Store) manufacturerViewLocked(id string) contracts.ManufacturerView {
	m, ok := s.manufacturers[id]
	if !ok {
		return contracts.ManufacturerView{ID: id}
	}
	v := contracts.ManufacturerView{
		ID:          m.ID(),
		Name:        m.Name(),
		Country:     m.Country(),
		Website:     m.Website(),
		Description: m.Description(),
		Address:     m.Address(),
	}
	if cid := m.ContactID(); cid != nil {
		if c, ok := s.contacts[*cid]; ok {
			v.Contact = &contracts.ContactView{ID: c.ID(), Name: c.Name(), Email: c.Email(), Phone: c.Phone()}
		}
	}
	return v
}
