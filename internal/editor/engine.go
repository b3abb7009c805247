// Package editor implements the block editing engine. All operations work on
// an in-memory copy of a profile; persistence happens through the autosave
// scheduler or an explicit flush.
package editor

import (
	"time"

	"github.com/google/uuid"

	"gotolinks/internal/models"
)

// MoveDirection selects which neighbor a block swaps with.
type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// Valid reports whether d is a known direction.
func (d MoveDirection) Valid() bool {
	return d == MoveUp || d == MoveDown
}

// AddBlock appends a new block of the given type to the end of the list.
// The returned profile is a new copy; the input is never mutated.
func AddBlock(p *models.Profile, t models.BlockType, data models.BlockData) (*models.Profile, *models.ProfileBlock, error) {
	if !t.Valid() {
		return nil, nil, models.NewValidationError("unknown block type " + string(t))
	}

	next := p.Clone()
	block := models.ProfileBlock{
		ID:        uuid.New().String(),
		ProfileID: next.ID,
		Type:      t,
		Position:  len(next.Blocks),
		Data:      data,
	}
	next.Blocks = append(next.Blocks, block)
	next.UpdatedAt = time.Now()
	return next, &next.Blocks[len(next.Blocks)-1], nil
}

// UpdateBlockData merges patch into the block's data. Only fields present in
// the patch change; an explicit empty string clears a field.
func UpdateBlockData(p *models.Profile, blockID string, patch models.BlockDataPatch) (*models.Profile, error) {
	idx := p.BlockByID(blockID)
	if idx < 0 {
		return nil, models.NewBlockNotFoundError(blockID)
	}

	next := p.Clone()
	next.Blocks[idx].Data = patch.Apply(next.Blocks[idx].Data)
	next.UpdatedAt = time.Now()
	return next, nil
}

// DeleteBlock removes the block and renumbers the remainder so positions
// stay dense from zero.
func DeleteBlock(p *models.Profile, blockID string) (*models.Profile, error) {
	idx := p.BlockByID(blockID)
	if idx < 0 {
		return nil, models.NewBlockNotFoundError(blockID)
	}

	next := p.Clone()
	next.Blocks = append(next.Blocks[:idx], next.Blocks[idx+1:]...)
	renumber(next.Blocks)
	next.UpdatedAt = time.Now()
	return next, nil
}

// MoveBlock swaps the block with its neighbor in the given direction. Moving
// the first block up or the last block down is a no-op, not an error.
func MoveBlock(p *models.Profile, blockID string, dir MoveDirection) (*models.Profile, error) {
	if !dir.Valid() {
		return nil, models.NewValidationError("direction must be up or down")
	}

	idx := p.BlockByID(blockID)
	if idx < 0 {
		return nil, models.NewBlockNotFoundError(blockID)
	}

	next := p.Clone()
	switch dir {
	case MoveUp:
		if idx == 0 {
			return next, nil
		}
		next.Blocks[idx-1], next.Blocks[idx] = next.Blocks[idx], next.Blocks[idx-1]
	case MoveDown:
		if idx == len(next.Blocks)-1 {
			return next, nil
		}
		next.Blocks[idx], next.Blocks[idx+1] = next.Blocks[idx+1], next.Blocks[idx]
	}
	renumber(next.Blocks)
	next.UpdatedAt = time.Now()
	return next, nil
}

func renumber(blocks []models.ProfileBlock) {
	for i := range blocks {
		blocks[i].Position = i
	}
}
