package draid

// OffsetToGroup converts a logical offset to its redundancy group
// number. vdev_draid_offset_to_group.
func (c *Config) OffsetToGroup(offset uint64) uint64 {
	return offset / c.groupsz
}

// GroupToOffset converts a group number to its logical starting offset.
// vdev_draid_group_to_offset.
func (c *Config) GroupToOffset(group uint64) uint64 {
	return group * c.groupsz
}

// LogicalToPhysical returns the physical byte offset on the first
// device of a group, together with the permutation index and the
// column the group starts at within the permutation's device order.
// vdev_draid_logical_to_physical.
func (c *Config) LogicalToPhysical(logicalOffset uint64) (physicalOffset, perm, groupStart uint64) {
	bOffset := logicalOffset >> c.ashift

	blocksPerRow := uint64(RowSize) >> c.ashift

	group := logicalOffset / c.groupsz
	groupStart = (group * c.groupwidth) % c.ndisks

	bOffset = bOffset % (blocksPerRow * c.groupwidth)

	perm = group / c.ngroups
	row := (perm * ((c.groupwidth * c.ngroups) / c.ndisks)) +
		(((group % c.ngroups) * c.groupwidth) / c.ndisks)

	physicalOffset = ((blocksPerRow * row) + (bOffset / c.groupwidth)) << c.ashift
	return physicalOffset, perm, groupStart
}

// getPerm returns the base permutation row and iteration id for a
// permutation index, delegating to the Config's PermMap.
func (c *Config) getPerm(pindex uint64) (base []byte, iter uint64) {
	return c.permMap.getPerm(pindex)
}

// permuteID maps a logical column (within [0, ndisks)) to the physical
// device index it resolves to for the permutation identified by base
// and iter. vdev_draid_permute_id.
func (c *Config) permuteID(base []byte, iter, col uint64) uint64 {
	return c.permMap.permuteID(base, iter, col)
}

// GroupDevices returns the groupwidth physical device indices a
// redundancy group maps to, in column order, given the group's logical
// starting offset. This is invariant 2 from spec §3: the returned
// indices are pairwise distinct and exclude the last nspares columns of
// the permutation they're drawn from.
func (c *Config) GroupDevices(logicalOffset uint64) []uint64 {
	_, perm, groupStart := c.LogicalToPhysical(logicalOffset)
	base, iter := c.getPerm(perm)

	devices := make([]uint64, c.groupwidth)
	for i := uint64(0); i < c.groupwidth; i++ {
		col := (groupStart + i) % c.ndisks
		devices[i] = c.permuteID(base, iter, col)
	}
	return devices
}

// SpareDevices returns the nspares physical device indices occupied by
// the distributed spares of permutation permIndex,
// ordered by spare_id (last column of the permutation is spare 0,
// second-to-last is spare 1, and so on). Invariant 3 from spec §3.
func (c *Config) SpareDevices(permIndex uint64) []uint64 {
	base, iter := c.getPerm(permIndex)

	spares := make([]uint64, c.nspares)
	for s := uint64(0); s < c.nspares; s++ {
		spares[s] = c.permuteID(base, iter, (c.children-1)-s)
	}
	return spares
}
