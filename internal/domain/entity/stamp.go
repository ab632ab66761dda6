package entity

import "time"

// Stampable identidad y fechas que asigna el sistema al guardar vía servicio de registros.
type Stampable interface {
	SetID(id string)
	Created() time.Time
	// Stamp fija created_at y, si la entidad es mutable, updated_at.
	Stamp(created, updated time.Time)
}

func (u *User) SetID(id string)       { u.ID = id }
func (u *User) Created() time.Time    { return u.CreatedAt }
func (u *User) Stamp(c, up time.Time) { u.CreatedAt, u.UpdatedAt = c, up }
func (s *Shop) SetID(id string)       { s.ID = id }
func (s *Shop) Created() time.Time    { return s.CreatedAt }
func (s *Shop) Stamp(c, up time.Time) { s.CreatedAt, s.UpdatedAt = c, up }
func (p *Product) SetID(id string)    { p.ID = id }
func (p *Product) Created() time.Time { return p.CreatedAt }
func (p *Product) Stamp(c, up time.Time) {
	p.CreatedAt, p.UpdatedAt = c, up
}

func (sp *ShopProduct) SetID(id string)    { sp.ID = id }
func (sp *ShopProduct) Created() time.Time { return sp.CreatedAt }
func (sp *ShopProduct) Stamp(c, up time.Time) {
	sp.CreatedAt, sp.UpdatedAt = c, up
}

func (pu *PriceUpdate) SetID(id string)       { pu.ID = id }
func (pu *PriceUpdate) Created() time.Time    { return pu.CreatedAt }
func (pu *PriceUpdate) Stamp(c, _ time.Time)  { pu.CreatedAt = c }
func (s *Subscription) SetID(id string)       { s.ID = id }
func (s *Subscription) Created() time.Time    { return s.CreatedAt }
func (s *Subscription) Stamp(c, up time.Time) { s.CreatedAt, s.UpdatedAt = c, up }
func (p *Payment) SetID(id string)            { p.ID = id }
func (p *Payment) Created() time.Time         { return p.CreatedAt }
func (p *Payment) Stamp(c, _ time.Time)       { p.CreatedAt = c }
func (f *Favorite) SetID(id string)           { f.ID = id }
func (f *Favorite) Created() time.Time        { return f.CreatedAt }
func (f *Favorite) Stamp(c, _ time.Time)      { f.CreatedAt = c }
func (n *Notification) SetID(id string)       { n.ID = id }
func (n *Notification) Created() time.Time    { return n.CreatedAt }
func (n *Notification) Stamp(c, _ time.Time)  { n.CreatedAt = c }
