// meta/meta.go
package meta

// HEX_SIZE is the circumradius of a rendered hex in pixels.
const HEX_SIZE = 40.0

// HEX_GAP is the spacing added to HEX_SIZE when laying out the grid.
const HEX_GAP = 2.5

// BOARD_RADIUS is the hex distance from the origin to the board edge.
const BOARD_RADIUS = 5

// how many hex radii larger the background hex should be
const BACKGROUND_HEX_SCALE = 1.8

// CAPTURE_THRESHOLD is the capture progress at which a tile flips owner.
const CAPTURE_THRESHOLD = 3

const STARTING_COINS = 10

// STIPEND is paid to the ally every turn regardless of territory.
const STIPEND = 2

// TILE_INCOME is paid per ally-owned tile every turn.
const TILE_INCOME = 1

// MAX_TURNS bounds headless matches that never reach a capital.
const MAX_TURNS = 300

// GO_ROUTINES defines the number of goroutines to use.
const GO_ROUTINES = 8

// EPISODES defines the number of episodes for MCTS.
const EPISODES = 150

// WITH_CUTOFF defines the rollout cutoff depth for MCTS.
const WITH_CUTOFF = 100
