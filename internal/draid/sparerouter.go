package draid

import (
	"fmt"
	"strconv"
	"strings"
)

// SpareName is a parsed "draid<p>-<vdev_id>-<spare_id>" distributed
// spare identifier. vdev_draid_spare_values.
type SpareName struct {
	NParity uint64
	VdevID  uint64
	SpareID uint64
}

// FormatSpareName renders the bit-exact on-disk spare path:
// "draid<nparity>-<vdevID>-<spareID>", decimal, no leading zeros.
// vdev_draid_spare_name.
func FormatSpareName(nparity, vdevID, spareID uint64) string {
	return fmt.Sprintf("draid%d-%d-%d", nparity, vdevID, spareID)
}

// ParseSpareName parses a spare path produced by FormatSpareName.
// vdev_draid_spare_values.
func ParseSpareName(name string) (SpareName, error) {
	rest, ok := strings.CutPrefix(name, "draid")
	if !ok {
		return SpareName{}, fmt.Errorf("%w: %q is not a distributed spare name", ErrInvalid, name)
	}

	parts := strings.SplitN(rest, "-", 3)
	if len(parts) != 3 {
		return SpareName{}, fmt.Errorf("%w: %q does not match draid<p>-<vdev_id>-<spare_id>", ErrInvalid, name)
	}

	nparity, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return SpareName{}, fmt.Errorf("%w: bad nparity in %q: %v", ErrInvalid, name, err)
	}
	vdevID, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return SpareName{}, fmt.Errorf("%w: bad vdev id in %q: %v", ErrInvalid, name, err)
	}
	spareID, err := strconv.ParseUint(parts[2], 10, 64)
	if err != nil {
		return SpareName{}, fmt.Errorf("%w: bad spare id in %q: %v", ErrInvalid, name, err)
	}

	return SpareName{NParity: nparity, VdevID: vdevID, SpareID: spareID}, nil
}

// ParentOperator names the class of parent vdev a child currently sits
// under, the distinction the "faulted" predicate depends on.
type ParentOperator int

const (
	OperatorNone ParentOperator = iota
	OperatorSpare
	OperatorReplacing
	OperatorDraid
)

// ParentInfo answers what operator (if any) governs a physical child
// index, and whether the spare at that position is presently active.
// The surrounding runtime owns this state; the core only consults it.
type ParentInfo interface {
	ParentOperator(childIdx uint64) ParentOperator
	// NestedRouter returns the SpareRouter governing childIdx when that
	// child is itself a distributed spare belonging to a different
	// dRAID top-level vdev, so GetChild can keep unwinding across vdev
	// boundaries instead of looping on its own geometry.
	NestedRouter(childIdx uint64) (*SpareRouter, bool)
}

// SpareRouter resolves distributed-spare addressing: which leaf child a
// logical spare slot currently maps to, whether that slot is active,
// and synthesizes label I/O for the reserved head/tail ranges.
// vdev_draid_spare_get_child, vdev_draid_spare_is_active,
// vdev_draid_spare_open label handling.
type SpareRouter struct {
	cfg       *Config
	env       ChildEnvironment
	parent    ParentInfo
	labelHead uint64
	labelTail uint64
	psize     uint64
}

// NewSpareRouter binds a SpareRouter to one dRAID geometry, its child
// environment, and the reserved label region sizes.
func NewSpareRouter(cfg *Config, env ChildEnvironment, parent ParentInfo, labelHead, labelTail, psize uint64) *SpareRouter {
	return &SpareRouter{
		cfg:       cfg,
		env:       env,
		parent:    parent,
		labelHead: labelHead,
		labelTail: labelTail,
		psize:     psize,
	}
}

// GetChild resolves the leaf child backing a distributed spare's
// logical slot at a given physical offset, recursing through nested
// spares. It returns ErrNoChildren (ENXIO in spec terms) when the
// offset exceeds the usable range after label reservations.
// vdev_draid_spare_get_child.
func (r *SpareRouter) GetChild(spareID uint64, physOffset uint64) (uint64, error) {
	if physOffset > r.psize-(r.labelHead+r.labelTail) {
		return 0, fmt.Errorf("%w: offset %d exceeds usable spare range", ErrNoChildren, physOffset)
	}

	perm := physOffset / r.cfg.devslicesz
	base, iter := r.cfg.getPerm(perm)

	childIdx := r.cfg.permuteID(base, iter, (r.cfg.children-1)-spareID)

	if r.parent != nil {
		if nested, ok := r.parent.NestedRouter(childIdx); ok {
			// The resolved slot is itself a distributed spare of
			// another top-level vdev; keep unwinding there.
			return nested.GetChild(spareID, physOffset)
		}
	}

	return childIdx, nil
}

// IsActive reports whether the spare's parent vdev currently uses one
// of the operators that make a distributed spare meaningful: spare,
// replacing, or draid itself. vdev_draid_spare_is_active.
func (r *SpareRouter) IsActive(childIdx uint64) bool {
	if r.parent == nil {
		return false
	}
	switch r.parent.ParentOperator(childIdx) {
	case OperatorSpare, OperatorReplacing, OperatorDraid:
		return true
	default:
		return false
	}
}

// Readable delegates to the resolved leaf's availability, considering
// its dirty-time log: a leaf that is readable but has a MISSING DTL
// entry covering the requested range is not considered readable here.
func (r *SpareRouter) Readable(childIdx uint64, txg, size uint64) bool {
	if r.env == nil {
		return false
	}
	if !r.env.ChildReadable(childIdx) {
		return false
	}
	return !r.env.ChildDTLContains(childIdx, DTLMissing, txg, size)
}

// Missing reports the complement of Readable for a given txg/size
// range: true when the leaf cannot currently serve the read.
func (r *SpareRouter) Missing(childIdx uint64, txg, size uint64) bool {
	return !r.Readable(childIdx, txg, size)
}

// Faulted is the distinct "parent uses replacing/sparing" predicate:
// vdev_draid_faulted. It is independent of whether the child happens
// to answer reads or writes right now.
func (r *SpareRouter) Faulted(childIdx uint64) bool {
	if r.parent != nil {
		switch r.parent.ParentOperator(childIdx) {
		case OperatorReplacing, OperatorSpare:
			return true
		}
	}
	if r.env != nil {
		return r.env.ChildIsFaulted(childIdx)
	}
	return false
}

// Label is the minimal in-memory label SpareRouter synthesizes for
// reserved label ranges; no on-disk label is ever written or read.
type Label struct {
	PoolState   string
	Txg         uint64
	Version     uint64
	TopGuid     uint64
	SpareActive bool
}

// ProbeLabel synthesizes a label read for the reserved head/tail
// ranges. offset must fall within [0,labelHead) or within the tail
// region; callers outside that range get ErrInvalid.
func (r *SpareRouter) ProbeLabel(offset uint64, l Label) ([]byte, error) {
	if offset >= r.labelHead && offset < r.psize-r.labelTail {
		return nil, fmt.Errorf("%w: offset %d is not within a label range", ErrInvalid, offset)
	}
	return encodeLabel(l), nil
}

// WriteLabel succeeds silently for probe/config-writer paths (the
// in-memory label is never actually persisted) and fails EIO
// otherwise, matching the original's refusal to accept ordinary label
// writes against a synthetic spare label.
func (r *SpareRouter) WriteLabel(offset uint64, flags Flags) error {
	if flags.Has(FlagProbe) || flags.Has(FlagConfigWriter) {
		return nil
	}
	return fmt.Errorf("%w: label writes require PROBE or CONFIG_WRITER", ErrIO)
}

func encodeLabel(l Label) []byte {
	return []byte(fmt.Sprintf("pool_state=%s txg=%d version=%d top_guid=%d spare_active=%t",
		l.PoolState, l.Txg, l.Version, l.TopGuid, l.SpareActive))
}
