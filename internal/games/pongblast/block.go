package pongblast

import (
	"github.com/vovakirdan/pongblast/internal/config"
	"github.com/vovakirdan/pongblast/internal/core"
)

// Block is a destructible cell owned by one side. Destruction is terminal.
type Block struct {
	owner core.Side
	box   core.Box
	hp    int
	maxHP int
	alive bool
	col   int
	row   int
}

// NewBlock creates a live block with hp hit points.
func NewBlock(owner core.Side, box core.Box, hp int) *Block {
	hp = max(hp, 1)
	return &Block{owner: owner, box: box, hp: hp, maxHP: hp, alive: true}
}

// Damage removes amount hit points and reports whether this call destroyed
// the block. A destroyed block ignores further damage.
func (b *Block) Damage(amount int) bool {
	if !b.alive || amount <= 0 {
		return false
	}
	b.hp -= amount
	if b.hp <= 0 {
		b.hp = 0
		b.alive = false
		return true
	}
	return false
}

func (b *Block) Owner() core.Side { return b.owner }
func (b *Block) Box() core.Box { return b.box }
func (b *Block) HP() int { return b.hp }
func (b *Block) MaxHP() int { return b.maxHP }
func (b *Block) Alive() bool { return b.alive }

// Cell returns the block's grid column and row.
func (b *Block) Cell() (col, row int) { return b.col, b.row }

// BlockGrid is one side's cols x rows grid of blocks.
type BlockGrid struct {
	owner  core.Side
	cols   int
	rows   int
	cellW  float64
	cellH  float64
	origin core.Vec2 // top-left
	blocks []*Block  // row-major
}

// NewBlockGrid lays out a full grid for owner. The player's grid hugs the
// left edge, the enemy's the right edge.
func NewBlockGrid(owner core.Side, cfg config.BlocksConfig, arenaW, arenaH float64) *BlockGrid {
	g := &BlockGrid{
		owner: owner,
		cols:  cfg.Cols,
		rows:  cfg.Rows,
		cellW: cfg.CellW,
		cellH: (arenaH - 2*cfg.MarginY) / float64(cfg.Rows),
	}
	width := float64(cfg.Cols) * cfg.CellW
	if owner == core.SideEnemy {
		g.origin = core.V(arenaW-cfg.EdgeInset-width, cfg.MarginY)
	} else {
		g.origin = core.V(cfg.EdgeInset, cfg.MarginY)
	}

	g.blocks = make([]*Block, 0, cfg.Cols*cfg.Rows)
	for row := range cfg.Rows {
		for col := range cfg.Cols {
			c := g.cellCenter(col, row)
			b := NewBlock(owner, core.BoxAt(c.X, c.Y, g.cellW-cfg.Gap, g.cellH-cfg.Gap), cfg.HP)
			b.col, b.row = col, row
			g.blocks = append(g.blocks, b)
		}
	}
	return g
}

func (g *BlockGrid) cellCenter(col, row int) core.Vec2 {
	return core.V(
		g.origin.X+float64(col)*g.cellW+g.cellW/2,
		g.origin.Y+float64(row)*g.cellH+g.cellH/2,
	)
}

// FrontX returns the x of the center of the column facing the midline.
// Paddles are placed relative to it.
func (g *BlockGrid) FrontX() float64 {
	if g.owner == core.SideEnemy {
		return g.cellCenter(0, 0).X
	}
	return g.cellCenter(g.cols-1, 0).X
}

// Blocks returns all blocks, destroyed ones included, in row-major order.
func (g *BlockGrid) Blocks() []*Block { return g.blocks }

// Block returns the block at (col, row), or nil when out of range.
func (g *BlockGrid) Block(col, row int) *Block {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return nil
	}
	return g.blocks[row*g.cols+col]
}

// AliveCount returns how many blocks are still standing.
func (g *BlockGrid) AliveCount() int {
	n := 0
	for _, b := range g.blocks {
		if b.alive {
			n++
		}
	}
	return n
}

func (g *BlockGrid) Owner() core.Side { return g.owner }
