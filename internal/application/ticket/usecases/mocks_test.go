package usecases

import (
	"context"
	"sort"
	"time"

	"github.com/garagehq/shopapi/internal/domain/inventory"
	"github.com/garagehq/shopapi/internal/domain/mechanic"
	"github.com/garagehq/shopapi/internal/domain/ticket"
	tvo "github.com/garagehq/shopapi/internal/domain/ticket/valueobjects"
	"github.com/garagehq/shopapi/internal/domain/user"
	uvo "github.com/garagehq/shopapi/internal/domain/user/valueobjects"
	"github.com/garagehq/shopapi/internal/shared/authorization"
)

// shopStore is an in-memory backing store shared by the fake repositories.
type shopStore struct {
	users     map[uint]*user.User
	mechanics map[uint]*mechanic.Mechanic
	parts     map[uint]*inventory.Part
	tickets   map[uint]*ticket.Ticket
	members   map[uint]map[uint]bool
	attached  map[uint]map[uint]bool
	nextID    uint
}

func newShopStore() *shopStore {
	return &shopStore{
		users:     make(map[uint]*user.User),
		mechanics: make(map[uint]*mechanic.Mechanic),
		parts:     make(map[uint]*inventory.Part),
		tickets:   make(map[uint]*ticket.Ticket),
		members:   make(map[uint]map[uint]bool),
		attached:  make(map[uint]map[uint]bool),
		nextID:    100,
	}
}

func (s *shopStore) addUser(id uint, email string) *user.User {
	addr, err := uvo.NewEmail(email)
	if err != nil {
		panic(err)
	}
	now := time.Now().UTC()
	u, err := user.ReconstructUser(id, addr.LocalPart(), addr, "hash", authorization.RoleUser, now, now)
	if err != nil {
		panic(err)
	}
	s.users[id] = u
	return u
}

func (s *shopStore) addMechanic(id uint, name string) {
	m, err := mechanic.ReconstructMechanic(id, name, "engines")
	if err != nil {
		panic(err)
	}
	s.mechanics[id] = m
}

func (s *shopStore) addPart(id uint, name string, price float64) {
	p, err := inventory.ReconstructPart(id, name, price)
	if err != nil {
		panic(err)
	}
	s.parts[id] = p
}

func (s *shopStore) addTicket(id, ownerID uint) {
	now := time.Now().UTC()
	t, err := ticket.ReconstructTicket(id, "brakes squeal", tvo.StatusOpen, ownerID, nil, now, now)
	if err != nil {
		panic(err)
	}
	s.tickets[id] = t
}

func sortedKeys(m map[uint]bool) []uint {
	out := make([]uint, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// fakeTicketRepository implements ticket.Repository over shopStore.
type fakeTicketRepository struct {
	store     *shopStore
	updateErr error
}

func (r *fakeTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	r.store.nextID++
	if err := t.SetID(r.store.nextID); err != nil {
		return err
	}
	r.store.tickets[t.ID()] = t
	return nil
}

func (r *fakeTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return r.store.tickets[id], nil
}

func (r *fakeTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.store.tickets[t.ID()] = t
	return nil
}

func (r *fakeTicketRepository) Delete(ctx context.Context, id uint) error {
	delete(r.store.tickets, id)
	delete(r.store.members, id)
	delete(r.store.attached, id)
	return nil
}

func (r *fakeTicketRepository) List(ctx context.Context, filter ticket.ListFilter) ([]*ticket.Ticket, int64, error) {
	ids := make([]uint, 0, len(r.store.tickets))
	for id, t := range r.store.tickets {
		if filter.UserID != nil && t.UserID() != *filter.UserID {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*ticket.Ticket, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.store.tickets[id])
	}
	return out, int64(len(out)), nil
}

func (r *fakeTicketRepository) GetDetails(ctx context.Context, ids []uint) ([]*ticket.Details, error) {
	var out []*ticket.Details
	for _, id := range ids {
		t, ok := r.store.tickets[id]
		if !ok {
			continue
		}
		d := &ticket.Details{Ticket: t, Owner: r.store.users[t.UserID()]}
		if pm := t.PrimaryMechanicID(); pm != nil {
			d.PrimaryMechanic = r.store.mechanics[*pm]
		}
		for _, mid := range sortedKeys(r.store.members[id]) {
			d.Mechanics = append(d.Mechanics, r.store.mechanics[mid])
		}
		for _, pid := range sortedKeys(r.store.attached[id]) {
			d.Parts = append(d.Parts, r.store.parts[pid])
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *fakeTicketRepository) AddMechanics(ctx context.Context, ticketID uint, mechanicIDs []uint) error {
	if r.store.members[ticketID] == nil {
		r.store.members[ticketID] = make(map[uint]bool)
	}
	for _, id := range mechanicIDs {
		r.store.members[ticketID][id] = true
	}
	return nil
}

func (r *fakeTicketRepository) RemoveMechanics(ctx context.Context, ticketID uint, mechanicIDs []uint) error {
	for _, id := range mechanicIDs {
		delete(r.store.members[ticketID], id)
	}
	return nil
}

func (r *fakeTicketRepository) AddPart(ctx context.Context, ticketID, partID uint) error {
	if r.store.attached[ticketID] == nil {
		r.store.attached[ticketID] = make(map[uint]bool)
	}
	r.store.attached[ticketID][partID] = true
	return nil
}

func (r *fakeTicketRepository) RemovePart(ctx context.Context, ticketID, partID uint) error {
	delete(r.store.attached[ticketID], partID)
	return nil
}

func (r *fakeTicketRepository) DeleteByOwner(ctx context.Context, userID uint) error {
	for id, t := range r.store.tickets {
		if t.UserID() == userID {
			_ = r.Delete(ctx, id)
		}
	}
	return nil
}

func (r *fakeTicketRepository) DetachMechanic(ctx context.Context, mechanicID uint) error {
	for id := range r.store.members {
		delete(r.store.members[id], mechanicID)
	}
	return nil
}

func (r *fakeTicketRepository) DetachPart(ctx context.Context, partID uint) error {
	for id := range r.store.attached {
		delete(r.store.attached[id], partID)
	}
	return nil
}

// The lookup fakes embed the domain interface and override only what the
// ticket use cases call.
type fakeUserRepository struct {
	user.Repository
	store *shopStore
}

func (r *fakeUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return r.store.users[id], nil
}

type fakeMechanicRepository struct {
	mechanic.Repository
	store *shopStore
}

func (r *fakeMechanicRepository) GetByID(ctx context.Context, id uint) (*mechanic.Mechanic, error) {
	return r.store.mechanics[id], nil
}

func (r *fakeMechanicRepository) FindExistingIDs(ctx context.Context, ids []uint) ([]uint, error) {
	var out []uint
	for _, id := range ids {
		if _, ok := r.store.mechanics[id]; ok {
			out = append(out, id)
		}
	}
	return out, nil
}

type fakePartRepository struct {
	inventory.Repository
	store *shopStore
}

func (r *fakePartRepository) GetByID(ctx context.Context, id uint) (*inventory.Part, error) {
	return r.store.parts[id], nil
}

type stubPolicy struct {
	managers map[string]bool
}

func (p *stubPolicy) Enforce(role, resource, action string) (bool, error) {
	return p.managers[role], nil
}

func newStubPolicy() *stubPolicy {
	return &stubPolicy{managers: map[string]bool{
		authorization.RoleAdmin.String():    true,
		authorization.RoleMechanic.String(): true,
	}}
}

type tagStripper struct{}

func (tagStripper) StripTags(input string) string {
	return stripAngle(input)
}

func stripAngle(s string) string {
	out := make([]rune, 0, len(s))
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>' && inTag:
			inTag = false
		case !inTag:
			out = append(out, r)
		}
	}
	return string(out)
}

type prefixRenderer struct {
	err error
}

func (r prefixRenderer) ToHTMLSanitized(markdown string) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	return "<p>" + markdown + "</p>", nil
}

type statusMail struct {
	to       string
	ticketID uint
	status   string
}

type recordingMailer struct {
	sent []statusMail
	err  error
}

func (m *recordingMailer) SendTicketStatusEmail(to, name string, ticketID uint, status string) error {
	m.sent = append(m.sent, statusMail{to: to, ticketID: ticketID, status: status})
	return m.err
}

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var (
	owner         = authorization.Identity{UserID: 1, Role: authorization.RoleUser}
	stranger      = authorization.Identity{UserID: 2, Role: authorization.RoleUser}
	mechanicActor = authorization.Identity{UserID: 3, Role: authorization.RoleMechanic}
)

func uintPtr(v uint) *uint {
	return &v
}

func strPtr(v string) *string {
	return &v
}
