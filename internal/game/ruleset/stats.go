package ruleset

// Stat bounds applied by stat generation, before trait bonuses.
const (
	BaseHP   = 120
	MaxHP    = 200
	BaseStat = 15
	MaxStat  = 35
)

// StatBlock holds the six combat stats of a character.
type StatBlock struct {
	HP     int `yaml:"hp"`
	Auto   int `yaml:"auto"`
	Def    int `yaml:"def"`
	Cap    int `yaml:"cap"`
	ResCap int `yaml:"rescap"`
	Spd    int `yaml:"spd"`
}

// Add returns the component-wise sum of s and o.
func (s StatBlock) Add(o StatBlock) StatBlock {
	return StatBlock{
		HP:     s.HP + o.HP,
		Auto:   s.Auto + o.Auto,
		Def:    s.Def + o.Def,
		Cap:    s.Cap + o.Cap,
		ResCap: s.ResCap + o.ResCap,
		Spd:    s.Spd + o.Spd,
	}
}

// IsZero reports whether every component is zero.
func (s StatBlock) IsZero() bool {
	return s == StatBlock{}
}

// hasNegative reports whether any component is below zero.
func (s StatBlock) hasNegative() bool {
	return s.HP < 0 || s.Auto < 0 || s.Def < 0 || s.Cap < 0 || s.ResCap < 0 || s.Spd < 0
}
