package draid

// DegradeOracle decides whether a logical block currently needs repair:
// whether any of the children its redundancy group maps to are faulted
// or unreadable, and whether a resilver actually has to touch it.
// vdev_draid_group_degraded.
type DegradeOracle struct {
	cfg    *Config
	spares *SpareRouter
}

// NewDegradeOracle binds a DegradeOracle to one dRAID geometry and the
// SpareRouter used to resolve fault/readability for its children.
func NewDegradeOracle(cfg *Config, spares *SpareRouter) *DegradeOracle {
	return &DegradeOracle{cfg: cfg, spares: spares}
}

// IsDegraded walks the groupwidth children a logical offset maps to and
// returns true as soon as one is faulted or unreadable.
// vdev_draid_group_degraded.
func (d *DegradeOracle) IsDegraded(offset uint64) bool {
	devices := d.cfg.GroupDevices(offset)
	for _, child := range devices {
		if d.spares.Faulted(child) {
			return true
		}
		if d.spares.Missing(child, 0, 1<<d.cfg.ashift) {
			return true
		}
	}
	return false
}

// NeedsResilver decides whether a block at offset actually needs to be
// rewritten by a resilver. A sequential resilver has no birth-txg to
// consult and simply trusts IsDegraded. A healing resilver with a known
// phys_birth skips the block when no child's dirty-time log actually
// covers that txg, even if the group is otherwise degraded.
func (d *DegradeOracle) NeedsResilver(offset, birthTxg uint64, sequential bool) bool {
	if sequential {
		return d.IsDegraded(offset)
	}

	devices := d.cfg.GroupDevices(offset)
	size := uint64(1) << d.cfg.ashift
	for _, child := range devices {
		if d.spares.env != nil && d.spares.env.ChildDTLContains(child, DTLPartial, birthTxg, size) {
			return true
		}
	}
	return false
}
