/*
Package fields generalizes the slice helpers of this module to one struct
field at a time. A [Field] pairs a getter and a setter for a single field of
an element type, playing the role other languages give to member pointers,
and every helper here takes one to decide which field it reads or rewrites.

  - **Accessors**: [New], [Of], [Field.Get], [Field.Set], [Field.Update].
  - **Linked edits**: [Link] and [LinkedField] stage a working copy of one
    field next to its element; [LinkedField.Commit] writes it back,
    [LinkedField.Restore] discards it.
  - **Per-field sequence ops**: [Extract], [Filter], [Transform], [Operate],
    [Distribute], [Print] and friends mirror package sliceutil, with
    predicates and operators applied to the selected field while whole
    elements stay the unit of filtering.

# Building accessors

The address selector form is the most compact:

	rank := fields.Of(func(c *Card) *int { return &c.Rank })
	rank.Get(&card)          // read
	rank.Set(&card, 12)      // write

# Ownership

A [LinkedField] keeps a plain pointer to its element. The caller keeps the
element alive and does not move it while links exist; nothing here locks or
copies parents defensively.
*/
package fields
