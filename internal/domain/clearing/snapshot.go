package clearing

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/Compensa-api/internal/domain/entity"
)

// Snapshot representación JSON del estado para el almacén clave-valor.
// Mapas y sets se serializan como arreglos de entradas ordenadas por id, para
// que dos snapshots del mismo estado sean byte a byte iguales.
type Snapshot struct {
	Inclusions []InclusionEntry `json:"inclusions"`
	Submission *SubmissionEntry `json:"submission,omitempty"`
	Visits     VisitsEntry      `json:"visits"`
}

// InclusionEntry entrada (id, estado, motivo) del mapa de inclusión.
type InclusionEntry struct {
	ID              string `json:"id"`
	Inclusion       string `json:"inclusion"`
	ExclusionReason string `json:"exclusion_reason,omitempty"`
}

// SubmissionEntry envío versionado serializado.
type SubmissionEntry struct {
	Version      int       `json:"version"`
	SubmittedIDs []string  `json:"submitted_ids"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// VisitsEntry estado de visitas serializado.
type VisitsEntry struct {
	LastVisitHome     *time.Time `json:"last_visit_home,omitempty"`
	LastVisitClearing *time.Time `json:"last_visit_clearing,omitempty"`
	SeenIDs           []string   `json:"seen_ids"`
}

// Snapshot construye la foto serializable del estado.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Inclusions: make([]InclusionEntry, 0, len(s.Inclusions)),
		Visits: VisitsEntry{
			LastVisitHome:     s.Visits.LastVisitHome,
			LastVisitClearing: s.Visits.LastVisitClearing,
			SeenIDs:           SortedIDs(s.Visits.SeenIDs),
		},
	}
	for id, rec := range s.Inclusions {
		snap.Inclusions = append(snap.Inclusions, InclusionEntry{
			ID:              id,
			Inclusion:       rec.Inclusion,
			ExclusionReason: rec.ExclusionReason,
		})
	}
	sort.Slice(snap.Inclusions, func(i, j int) bool { return snap.Inclusions[i].ID < snap.Inclusions[j].ID })

	if s.Submission != nil {
		snap.Submission = &SubmissionEntry{
			Version:      s.Submission.Version,
			SubmittedIDs: SortedIDs(s.Submission.SubmittedIDs),
			SubmittedAt:  s.Submission.SubmittedAt,
		}
	}
	return snap
}

// FromSnapshot reconstruye el estado desde una foto. Entradas faltantes
// (sets nil, sin envío) caen a los defaults de un estado fresco.
func FromSnapshot(snap Snapshot) *State {
	st := NewState()
	for _, e := range snap.Inclusions {
		st.Inclusions[e.ID] = &entity.InclusionRecord{
			Inclusion:       e.Inclusion,
			ExclusionReason: e.ExclusionReason,
		}
	}
	if snap.Submission != nil {
		ids := make(map[string]bool, len(snap.Submission.SubmittedIDs))
		for _, id := range snap.Submission.SubmittedIDs {
			ids[id] = true
		}
		st.Submission = &entity.Submission{
			Version:      snap.Submission.Version,
			SubmittedIDs: ids,
			SubmittedAt:  snap.Submission.SubmittedAt,
		}
	}
	st.Visits.LastVisitHome = snap.Visits.LastVisitHome
	st.Visits.LastVisitClearing = snap.Visits.LastVisitClearing
	for _, id := range snap.Visits.SeenIDs {
		st.Visits.SeenIDs[id] = true
	}
	return st
}

// EncodeState serializa el estado a JSON.
func EncodeState(s *State) ([]byte, error) {
	data, err := json.Marshal(s.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("serializar snapshot: %w", err)
	}
	return data, nil
}

// DecodeState deserializa un snapshot JSON. El llamador decide el fallback
// ante error (el contenedor de estado cae a un estado fresco y lo registra).
func DecodeState(data []byte) (*State, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("deserializar snapshot: %w", err)
	}
	return FromSnapshot(snap), nil
}

// SortedIDs ids de un set en orden estable.
func SortedIDs(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
