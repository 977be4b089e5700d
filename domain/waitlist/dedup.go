package waitlist

import (
	"sort"

	"github.com/playitloud/waitlist-api/internal/models"
	"github.com/playitloud/waitlist-api/pkg/validate"
)

// DedupReport summarizes one duplicate-resolution run. Final is Total minus
// successfully deleted records, and is only accurate if no concurrent writes
// happened during the run.
type DedupReport struct {
	Total   int `json:"total"`
	Deleted int `json:"deleted"`
	Errors  int `json:"errors"`
	Final   int `json:"final"`
}

// planDeletions computes the minimal deletion set over a waitlist snapshot:
// for every normalized email and, independently, every trimmed phone, all
// but the earliest-created record are marked; the two dimensions' marks are
// unioned. Records with an empty key are excluded from that dimension. The
// returned IDs follow the snapshot order.
func planDeletions(entries []*models.WaitlistEntry) []uint {
	marked := make(map[uint]struct{})

	markDuplicates(entries, marked, func(e *models.WaitlistEntry) string {
		return validate.NormalizeEmail(e.Email)
	})
	markDuplicates(entries, marked, func(e *models.WaitlistEntry) string {
		return validate.NormalizePhone(e.Phone)
	})

	ids := make([]uint, 0, len(marked))
	for _, entry := range entries {
		if _, ok := marked[entry.ID]; ok {
			ids = append(ids, entry.ID)
			delete(marked, entry.ID)
		}
	}
	return ids
}

func markDuplicates(entries []*models.WaitlistEntry, marked map[uint]struct{}, key func(*models.WaitlistEntry) string) {
	groups := make(map[string][]*models.WaitlistEntry)
	for _, entry := range entries {
		k := key(entry)
		if k == "" {
			continue
		}
		groups[k] = append(groups[k], entry)
	}

	for _, group := range groups {
		if len(group) < 2 {
			continue
		}
		sort.SliceStable(group, func(i, j int) bool {
			return creationKey(group[i]) < creationKey(group[j])
		})
		for _, entry := range group[1:] {
			marked[entry.ID] = struct{}{}
		}
	}
}

// creationKey is the tie-break sort key. A record with no creation timestamp
// sorts as 0, i.e. oldest: such a record always survives over records with
// real timestamps. That mirrors the historical behavior and is documented as
// expected, if arguably undesirable.
func creationKey(e *models.WaitlistEntry) int64 {
	if e.CreatedAt.IsZero() {
		return 0
	}
	return e.CreatedAt.UnixMilli()
}
