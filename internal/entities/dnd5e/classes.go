package dnd5e

import (
	"strings"

	"github.com/KirkDiggler/character-maker/internal/errors"
)

// Class names as they appear in the catalog
const (
	ClassArtificer = "Artificer"
	ClassBarbarian = "Barbarian"
	ClassBard      = "Bard"
	ClassCleric    = "Cleric"
	ClassDruid     = "Druid"
	ClassFighter   = "Fighter"
	ClassMonk      = "Monk"
	ClassPaladin   = "Paladin"
	ClassRanger    = "Ranger"
	ClassRogue     = "Rogue"
	ClassSorcerer  = "Sorcerer"
	ClassWarlock   = "Warlock"
	ClassWizard    = "Wizard"
)

// FallbackHitDie is used for records whose class is not in the catalog
const FallbackHitDie = 8

// Subclass is a named specialization. It carries no numeric effect.
type Subclass struct {
	Name        string
	Description string
}

// ClassDefinition is immutable catalog data for one class
type ClassDefinition struct {
	Name             string
	HitDie           int
	PrimaryAbilities []Ability
	SavingThrows     [2]Ability
	// SpellcastingAbility is empty for classes that do not cast
	SpellcastingAbility Ability
	Subclasses          []Subclass
}

// IsSpellcaster reports whether the class casts spells
func (c *ClassDefinition) IsSpellcaster() bool {
	return c.SpellcastingAbility != ""
}

// FindSubclass looks up a subclass by name, case-insensitively
func (c *ClassDefinition) FindSubclass(name string) (*Subclass, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i := range c.Subclasses {
		if strings.ToLower(c.Subclasses[i].Name) == key {
			sc := c.Subclasses[i]
			return &sc, nil
		}
	}
	return nil, errors.NotFoundf("%s has no subclass %q", c.Name, name)
}

// Classes returns a copy of the catalog in alphabetical order
func Classes() []ClassDefinition {
	out := make([]ClassDefinition, len(classCatalog))
	for i := range classCatalog {
		out[i] = classCatalog[i].clone()
	}
	return out
}

// ClassInfo looks up a class by name, case-insensitively. The returned
// definition carries the canonical name.
func ClassInfo(name string) (*ClassDefinition, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i := range classCatalog {
		if strings.ToLower(classCatalog[i].Name) == key {
			def := classCatalog[i].clone()
			return &def, nil
		}
	}
	return nil, errors.NotFoundf("class %q not found", name)
}

// IsSpellcaster reports whether the named class casts spells. Unknown names are not casters.
func IsSpellcaster(name string) bool {
	def, err := ClassInfo(name)
	if err != nil {
		return false
	}
	return def.IsSpellcaster()
}

// HitDieFor returns the class hit die, or FallbackHitDie when the class is unknown
func HitDieFor(name string) int {
	def, err := ClassInfo(name)
	if err != nil {
		return FallbackHitDie
	}
	return def.HitDie
}

func (c ClassDefinition) clone() ClassDefinition {
	c.PrimaryAbilities = append([]Ability(nil), c.PrimaryAbilities...)
	c.Subclasses = append([]Subclass(nil), c.Subclasses...)
	return c
}

var classCatalog = []ClassDefinition{
	{
		Name:                ClassArtificer,
		HitDie:              8,
		PrimaryAbilities:    []Ability{AbilityIntelligence},
		SavingThrows:        [2]Ability{AbilityConstitution, AbilityIntelligence},
		SpellcastingAbility: AbilityIntelligence,
		Subclasses: []Subclass{
			{"Alchemist", "Brews elixirs and experimental concoctions that heal and harm"},
			{"Armorer", "Turns a suit of armor into a magical arsenal"},
			{"Artillerist", "Builds eldritch cannons and specializes in explosive magic"},
			{"Battle Smith", "Fights alongside a steel defender construct"},
		},
	},
	{
		Name:             ClassBarbarian,
		HitDie:           12,
		PrimaryAbilities: []Ability{AbilityStrength},
		SavingThrows:     [2]Ability{AbilityStrength, AbilityConstitution},
		Subclasses: []Subclass{
			{"Path of the Berserker", "Frenzied rage that trades exhaustion for extra attacks"},
			{"Path of the Totem Warrior", "Draws power from a spirit animal guide"},
			{"Path of the Ancestral Guardian", "Ancestral spirits shield allies from the barbarian's foes"},
			{"Path of the Storm Herald", "Rage surrounds the barbarian with a stormy aura"},
			{"Path of the Zealot", "Divine fury fuels the rage and defies death"},
			{"Path of the Beast", "Rage manifests bestial claws, jaws or tail"},
			{"Path of Wild Magic", "Rage unleashes surges of unpredictable magic"},
		},
	},
	{
		Name:                ClassBard,
		HitDie:              8,
		PrimaryAbilities:    []Ability{AbilityCharisma},
		SavingThrows:        [2]Ability{AbilityDexterity, AbilityCharisma},
		SpellcastingAbility: AbilityCharisma,
		Subclasses: []Subclass{
			{"College of Lore", "Collects knowledge and magical secrets from every tradition"},
			{"College of Valor", "Skald who inspires heroes on the battlefield"},
			{"College of Glamour", "Fey-touched performer who beguiles audiences"},
			{"College of Swords", "Blade-juggling entertainer and duelist"},
			{"College of Whispers", "Trades in secrets, fear and blackmail"},
			{"College of Creation", "Sings the Song of Creation to animate objects"},
			{"College of Eloquence", "Master orator whose words cannot be ignored"},
		},
	},
	{
		Name:                ClassCleric,
		HitDie:              8,
		PrimaryAbilities:    []Ability{AbilityWisdom},
		SavingThrows:        [2]Ability{AbilityWisdom, AbilityCharisma},
		SpellcastingAbility: AbilityWisdom,
		Subclasses: []Subclass{
			{"Knowledge Domain", "Values learning and understanding above all"},
			{"Life Domain", "Channels positive energy to heal and sustain"},
			{"Light Domain", "Wields radiant fire and banishes darkness"},
			{"Nature Domain", "Serves gods of the wild and growing things"},
			{"Tempest Domain", "Commands thunder, lightning and the sea"},
			{"Trickery Domain", "Sows mischief with illusion and deception"},
			{"War Domain", "Champions of battle blessed with martial prowess"},
			{"Forge Domain", "Crafts holy arms and armor for the faithful"},
		},
	},
	{
		Name:                ClassDruid,
		HitDie:              8,
		PrimaryAbilities:    []Ability{AbilityWisdom},
		SavingThrows:        [2]Ability{AbilityIntelligence, AbilityWisdom},
		SpellcastingAbility: AbilityWisdom,
		Subclasses: []Subclass{
			{"Circle of the Land", "Mystic tied to a particular terrain"},
			{"Circle of the Moon", "Fierce guardian who fights in beast form"},
			{"Circle of Dreams", "Tied to the Feywild, brings comfort and healing"},
			{"Circle of the Shepherd", "Calls on animal spirits to aid allies"},
			{"Circle of Spores", "Finds beauty in decay and commands fungal growth"},
			{"Circle of Stars", "Draws power from starlight and constellations"},
			{"Circle of Wildfire", "Understands destruction as the herald of renewal"},
		},
	},
	{
		Name:             ClassFighter,
		HitDie:           10,
		PrimaryAbilities: []Ability{AbilityStrength, AbilityDexterity},
		SavingThrows:     [2]Ability{AbilityStrength, AbilityConstitution},
		Subclasses: []Subclass{
			{"Champion", "Hones raw physical power to deadly perfection"},
			{"Battle Master", "Employs martial maneuvers learned through study"},
			{"Eldritch Knight", "Combines martial mastery with wizard magic"},
			{"Arcane Archer", "Weaves magic into arrows"},
			{"Cavalier", "Mounted warrior who defends allies"},
			{"Samurai", "Indomitable fighting spirit and courtly grace"},
			{"Echo Knight", "Summons echoes of itself from unrealized timelines"},
			{"Psi Warrior", "Augments strikes with psionic power"},
		},
	},
	{
		Name:             ClassMonk,
		HitDie:           8,
		PrimaryAbilities: []Ability{AbilityDexterity, AbilityWisdom},
		SavingThrows:     [2]Ability{AbilityStrength, AbilityDexterity},
		Subclasses: []Subclass{
			{"Way of the Open Hand", "Master of unarmed combat techniques"},
			{"Way of Shadow", "Ninja who strikes from darkness"},
			{"Way of the Four Elements", "Harnesses ki to bend the elements"},
			{"Way of the Drunken Master", "Unpredictable swaying fighting style"},
			{"Way of the Kensei", "Treats weapons as extensions of the body"},
			{"Way of the Sun Soul", "Channels ki into searing bolts of light"},
			{"Way of Mercy", "Healer and bringer of merciful death"},
			{"Way of the Astral Self", "Manifests an astral form of the true self"},
		},
	},
	{
		Name:                ClassPaladin,
		HitDie:              10,
		PrimaryAbilities:    []Ability{AbilityStrength, AbilityCharisma},
		SavingThrows:        [2]Ability{AbilityWisdom, AbilityCharisma},
		SpellcastingAbility: AbilityCharisma,
		Subclasses: []Subclass{
			{"Oath of Devotion", "Ideals of justice, virtue and order"},
			{"Oath of the Ancients", "Preserves light and life against darkness"},
			{"Oath of Vengeance", "Punishes those who commit grievous sins"},
			{"Oath of Conquest", "Crushes the forces of chaos through fear"},
			{"Oath of Redemption", "Seeks peace and redemption before violence"},
			{"Oath of Glory", "Strives for heroic deeds worthy of legend"},
			{"Oath of the Watchers", "Guards the world from extraplanar threats"},
			{"Oathbreaker", "Broke a sacred oath to pursue dark ambition"},
		},
	},
	{
		Name:                ClassRanger,
		HitDie:              10,
		PrimaryAbilities:    []Ability{AbilityDexterity, AbilityWisdom},
		SavingThrows:        [2]Ability{AbilityStrength, AbilityDexterity},
		SpellcastingAbility: AbilityWisdom,
		Subclasses: []Subclass{
			{"Hunter", "Protects civilization from the terrors of the wild"},
			{"Beast Master", "Bonded with an animal companion"},
			{"Gloom Stalker", "At home in the darkest places"},
			{"Horizon Walker", "Guards the world against planar threats"},
			{"Monster Slayer", "Hunts vampires, dragons and other supernatural foes"},
			{"Fey Wanderer", "Touched by fey magic and mirth"},
			{"Swarmkeeper", "Accompanied by a swarm of nature spirits"},
		},
	},
	{
		Name:             ClassRogue,
		HitDie:           8,
		PrimaryAbilities: []Ability{AbilityDexterity},
		SavingThrows:     [2]Ability{AbilityDexterity, AbilityIntelligence},
		Subclasses: []Subclass{
			{"Thief", "Burglar and treasure hunter with quick hands"},
			{"Assassin", "Master of poison, disguise and the killing strike"},
			{"Arcane Trickster", "Enhances stealth with enchantment and illusion"},
			{"Inquisitive", "Roots out secrets and reads intentions"},
			{"Mastermind", "Schemer who directs others from the shadows"},
			{"Scout", "Skilled in stealth and surviving far from civilization"},
			{"Swashbuckler", "Dashing duelist who fights one on one"},
			{"Phantom", "Walks the line between life and death"},
		},
	},
	{
		Name:                ClassSorcerer,
		HitDie:              6,
		PrimaryAbilities:    []Ability{AbilityCharisma},
		SavingThrows:        [2]Ability{AbilityConstitution, AbilityCharisma},
		SpellcastingAbility: AbilityCharisma,
		Subclasses: []Subclass{
			{"Draconic Bloodline", "Magic inherited from dragon ancestry"},
			{"Wild Magic", "Innate magic from the forces of chaos"},
			{"Divine Soul", "Magic granted by a divine source"},
			{"Shadow Magic", "Power drawn from the Shadowfell"},
			{"Storm Sorcery", "Magic born of elemental air"},
			{"Aberrant Mind", "Psionic power from an alien influence"},
			{"Clockwork Soul", "Cosmic order of Mechanus flows through the sorcerer"},
		},
	},
	{
		Name:                ClassWarlock,
		HitDie:              8,
		PrimaryAbilities:    []Ability{AbilityCharisma},
		SavingThrows:        [2]Ability{AbilityWisdom, AbilityCharisma},
		SpellcastingAbility: AbilityCharisma,
		Subclasses: []Subclass{
			{"The Archfey", "Pact with a lord or lady of the fey"},
			{"The Fiend", "Pact with a being of the lower planes"},
			{"The Great Old One", "Pact with an unknowable entity from the Far Realm"},
			{"The Celestial", "Pact with a being of the upper planes"},
			{"The Hexblade", "Pact with a sentient weapon from the Shadowfell"},
			{"The Fathomless", "Pact with an entity of the ocean depths"},
			{"The Genie", "Pact with a noble genie"},
		},
	},
	{
		Name:                ClassWizard,
		HitDie:              6,
		PrimaryAbilities:    []Ability{AbilityIntelligence},
		SavingThrows:        [2]Ability{AbilityIntelligence, AbilityWisdom},
		SpellcastingAbility: AbilityIntelligence,
		Subclasses: []Subclass{
			{"School of Abjuration", "Magic that blocks, banishes or protects"},
			{"School of Conjuration", "Produces objects and creatures out of thin air"},
			{"School of Divination", "Reveals information and glimpses the future"},
			{"School of Enchantment", "Entrances and beguiles other people"},
			{"School of Evocation", "Creates powerful elemental effects"},
			{"School of Illusion", "Dazzles the senses and befuddles the mind"},
			{"School of Necromancy", "Manipulates the energies of life and death"},
			{"School of Transmutation", "Modifies energy and matter"},
		},
	},
}
