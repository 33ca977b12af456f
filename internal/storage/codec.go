package storage

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-maker/internal/errors"
	"github.com/KirkDiggler/character-maker/internal/pkg/idgen"
)

// SchemaVersion is written on every record. Records without a version are
// treated as version 1 and migrated on read.
const SchemaVersion = 2

type itemRecord struct {
	Name        string  `json:"name"`
	Weight      float64 `json:"weight"`
	Rarity      string  `json:"rarity"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description"`
	ValueGP     float64 `json:"value_gp"`
	ItemType    string  `json:"item_type"`
	Magical     bool    `json:"magical"`
	Attuned     bool    `json:"attuned"`
}

// characterRecord is the flat on-disk layout. Keys from the first schema are
// kept so older files stay readable by hand.
type characterRecord struct {
	SchemaVersion int    `json:"schema_version"`
	ID            string `json:"id,omitempty"`
	Name          string `json:"name"`
	CharacterName string `json:"character_name"`
	ClassLevel    string `json:"class_level"`

	Class            string `json:"class"`
	Subclass         string `json:"subclass"`
	Level            int    `json:"level"`
	Background       string `json:"background"`
	PlayerName       string `json:"player_name"`
	Race             string `json:"race"`
	Alignment        string `json:"alignment"`
	ExperiencePoints int    `json:"experience_points"`

	Strength     *int `json:"strength"`
	Dexterity    *int `json:"dexterity"`
	Constitution *int `json:"constitution"`
	Intelligence *int `json:"intelligence"`
	Wisdom       *int `json:"wisdom"`
	Charisma     *int `json:"charisma"`

	ProficiencyBonus   int    `json:"proficiency_bonus"`
	ArmorClass         int    `json:"armor_class"`
	Initiative         int    `json:"initiative"`
	Speed              *int   `json:"speed"`
	HitPointMaximum    int    `json:"hit_point_maximum"`
	CurrentHitPoints   int    `json:"current_hit_points"`
	TemporaryHitPoints int    `json:"temporary_hit_points"`
	HitDice            string `json:"hit_dice"`

	SavingThrows map[string]bool `json:"saving_throws"`
	Skills       map[string]bool `json:"skills"`

	SpellcastingClass   string         `json:"spellcasting_class"`
	SpellcastingAbility string         `json:"spellcasting_ability"`
	SpellSaveDC         int            `json:"spell_save_dc"`
	SpellAttackBonus    int            `json:"spell_attack_bonus"`
	SpellsKnown         []string       `json:"spells_known"`
	SpellsPrepared      []string       `json:"spells_prepared"`
	SpellSlots          map[string]int `json:"spell_slots"`
	SpellSlotsExpended  map[string]int `json:"spell_slots_expended"`

	FeaturesAndTraits  []string `json:"features_and_traits"`
	CustomAbilities    []string `json:"custom_abilities"`
	Languages          []string `json:"languages"`
	OtherProficiencies []string `json:"other_proficiencies"`
	Conditions         []string `json:"conditions"`
	CombatNotes        []string `json:"combat_notes"`

	Inventory []itemRecord `json:"inventory"`

	Status    string `json:"status,omitempty"`
	CreatedAt int64  `json:"created_at,omitempty"`
	UpdatedAt int64  `json:"updated_at,omitempty"`
}

// EncodeDocument renders the whole store as an indented JSON object keyed by name
func EncodeDocument(characters map[string]*dnd5e.Character) ([]byte, error) {
	doc := make(map[string]*characterRecord, len(characters))
	for name, c := range characters {
		if c == nil {
			continue
		}
		doc[name] = toRecord(c)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodePersistence, "failed to encode characters")
	}
	return data, nil
}

// DecodeDocument parses a store document, migrating records written by older versions
func DecodeDocument(data []byte) (map[string]*dnd5e.Character, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodePersistence, "malformed character document")
	}

	out := make(map[string]*dnd5e.Character, len(doc))
	for key, raw := range doc {
		c, err := DecodeCharacter(key, raw)
		if err != nil {
			return nil, err
		}
		if err := AddRecord(out, key, c); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// AddRecord files a decoded record under its character name. Two records that
// carry the same name are refused; keeping either would lose the other on the
// next save.
func AddRecord(characters map[string]*dnd5e.Character, key string, c *dnd5e.Character) error {
	if _, ok := characters[c.Name]; ok {
		return errors.Persistencef("record %q repeats the character name %q", key, c.Name).
			WithMeta("character", c.Name)
	}
	characters[c.Name] = c
	return nil
}

// EncodeCharacter renders one record
func EncodeCharacter(c *dnd5e.Character) ([]byte, error) {
	if c == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	data, err := json.Marshal(toRecord(c))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodePersistence, "failed to encode character").
			WithMeta("character", c.Name)
	}
	return data, nil
}

// DecodeCharacter parses one record stored under key. The key is the name
// when the record does not carry one.
func DecodeCharacter(key string, data []byte) (*dnd5e.Character, error) {
	var rec characterRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodePersistence, "malformed character record").
			WithMeta("character", key)
	}

	if rec.SchemaVersion > SchemaVersion {
		return nil, errors.Persistencef("character %q has unsupported schema version %d", key, rec.SchemaVersion)
	}
	if rec.SchemaVersion < 2 {
		migrateLegacy(&rec)
	}

	c, err := fromRecord(key, &rec)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodePersistence, "invalid character record").
			WithMeta("character", key)
	}
	return c, nil
}

var digitRun = regexp.MustCompile(`\d+`)

// ParseClassLevel splits a combined "Fighter 3" label. The level is the first
// run of digits (default 1); the class is the remaining text, canonicalized
// against the catalog when it matches.
func ParseClassLevel(classLevel string) (string, int) {
	level := dnd5e.MinLevel
	if run := digitRun.FindString(classLevel); run != "" {
		if n, err := strconv.Atoi(run); err == nil && n >= dnd5e.MinLevel && n <= dnd5e.MaxLevel {
			level = n
		}
	}

	class := strings.Join(strings.Fields(digitRun.ReplaceAllString(classLevel, " ")), " ")
	if strings.EqualFold(class, "level") {
		// written for records without a class
		return "", level
	}
	if def, err := dnd5e.ClassInfo(class); err == nil {
		class = def.Name
	}
	return class, level
}

// migrateLegacy upgrades a version 1 record in place
func migrateLegacy(rec *characterRecord) {
	if rec.Class == "" && rec.ClassLevel != "" {
		rec.Class, rec.Level = ParseClassLevel(rec.ClassLevel)
	}
	if rec.Level == 0 {
		rec.Level = dnd5e.MinLevel
	}
	if rec.Name == "" {
		rec.Name = rec.CharacterName
	}
	if rec.Speed == nil {
		speed := dnd5e.DefaultSpeed
		rec.Speed = &speed
	}
	rec.HitDice = strconv.Itoa(rec.Level) + "d" + strconv.Itoa(dnd5e.HitDieFor(rec.Class))
	rec.SchemaVersion = SchemaVersion
}

func toRecord(c *dnd5e.Character) *characterRecord {
	scores := c.AbilityScores
	speed := c.Speed
	rec := &characterRecord{
		SchemaVersion:    SchemaVersion,
		ID:               c.ID,
		Name:             c.Name,
		CharacterName:    c.Name,
		ClassLevel:       c.ClassLevel(),
		Class:            c.Class,
		Subclass:         c.Subclass,
		Level:            c.Level,
		Background:       c.Background,
		PlayerName:       c.PlayerName,
		Race:             c.Race,
		Alignment:        c.Alignment,
		ExperiencePoints: c.ExperiencePoints,

		Strength:     &scores.Strength,
		Dexterity:    &scores.Dexterity,
		Constitution: &scores.Constitution,
		Intelligence: &scores.Intelligence,
		Wisdom:       &scores.Wisdom,
		Charisma:     &scores.Charisma,

		ProficiencyBonus:   c.ProficiencyBonus,
		ArmorClass:         c.ArmorClass,
		Initiative:         c.Initiative,
		Speed:              &speed,
		HitPointMaximum:    c.HitPoints.Maximum,
		CurrentHitPoints:   c.HitPoints.Current,
		TemporaryHitPoints: c.HitPoints.Temporary,
		HitDice:            c.HitDice,

		SavingThrows: make(map[string]bool, len(dnd5e.Abilities)),
		Skills:       make(map[string]bool, len(dnd5e.Skills)),

		SpellSlots:         make(map[string]int, dnd5e.MaxSpellSlotLevel),
		SpellSlotsExpended: make(map[string]int, dnd5e.MaxSpellSlotLevel),
		SpellsKnown:        []string{},
		SpellsPrepared:     []string{},

		FeaturesAndTraits:  nonNil(c.FeaturesAndTraits),
		CustomAbilities:    nonNil(c.CustomAbilities),
		Languages:          nonNil(c.Languages),
		OtherProficiencies: nonNil(c.OtherProficiencies),
		Conditions:         nonNil(c.Conditions),
		CombatNotes:        nonNil(c.CombatNotes),
		Inventory:          make([]itemRecord, 0, len(c.Inventory)),

		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}

	for _, a := range dnd5e.Abilities {
		rec.SavingThrows[string(a)] = c.SavingThrows[a]
	}
	for _, s := range dnd5e.Skills {
		rec.Skills[string(s)] = c.Skills[s]
	}

	for _, level := range dnd5e.SpellSlotLevels {
		rec.SpellSlots[level.String()] = 0
		rec.SpellSlotsExpended[level.String()] = 0
	}
	if sc := c.Spellcasting; sc != nil {
		rec.SpellcastingClass = sc.Class
		rec.SpellcastingAbility = string(sc.Ability)
		rec.SpellSaveDC = sc.SaveDC
		rec.SpellAttackBonus = sc.AttackBonus
		rec.SpellsKnown = nonNil(sc.SpellsKnown)
		rec.SpellsPrepared = nonNil(sc.SpellsPrepared)
		for i, level := range dnd5e.SpellSlotLevels {
			rec.SpellSlots[level.String()] = sc.Slots[i].Total
			rec.SpellSlotsExpended[level.String()] = sc.Slots[i].Expended
		}
	}

	for _, item := range c.Inventory {
		rec.Inventory = append(rec.Inventory, itemRecord{
			Name:        item.Name,
			Weight:      item.Weight,
			Rarity:      string(item.Rarity),
			Quantity:    item.Quantity,
			Description: item.Description,
			ValueGP:     item.ValueGP,
			ItemType:    item.ItemType,
			Magical:     item.Magical,
			Attuned:     item.Attuned,
		})
	}

	return rec
}

func fromRecord(key string, rec *characterRecord) (*dnd5e.Character, error) {
	name := rec.Name
	if name == "" {
		name = key
	}

	id := rec.ID
	if id == "" {
		id = idgen.ForCharacterName(name)
	}

	c := &dnd5e.Character{
		ID:               id,
		Name:             name,
		PlayerName:       rec.PlayerName,
		Race:             rec.Race,
		Background:       rec.Background,
		Alignment:        rec.Alignment,
		Class:            rec.Class,
		Subclass:         rec.Subclass,
		Level:            rec.Level,
		ExperiencePoints: rec.ExperiencePoints,
		ProficiencyBonus: rec.ProficiencyBonus,
		ArmorClass:       rec.ArmorClass,
		Initiative:       rec.Initiative,
		Speed:            dnd5e.DefaultSpeed,
		HitDice:          rec.HitDice,
		HitPoints: dnd5e.HitPointState{
			Maximum:   rec.HitPointMaximum,
			Current:   rec.CurrentHitPoints,
			Temporary: rec.TemporaryHitPoints,
		},
		FeaturesAndTraits:  emptyToNil(rec.FeaturesAndTraits),
		CustomAbilities:    emptyToNil(rec.CustomAbilities),
		Languages:          emptyToNil(rec.Languages),
		OtherProficiencies: emptyToNil(rec.OtherProficiencies),
		Conditions:         emptyToNil(rec.Conditions),
		CombatNotes:        emptyToNil(rec.CombatNotes),
		Status:             dnd5e.CharacterStatus(rec.Status),
		CreatedAt:          rec.CreatedAt,
		UpdatedAt:          rec.UpdatedAt,
	}
	if rec.Speed != nil {
		c.Speed = *rec.Speed
	}
	if c.Status == "" {
		c.Status = dnd5e.CharacterStatusActive
	}

	scores := dnd5e.DefaultAbilityScores()
	for ability, v := range map[dnd5e.Ability]*int{
		dnd5e.AbilityStrength:     rec.Strength,
		dnd5e.AbilityDexterity:    rec.Dexterity,
		dnd5e.AbilityConstitution: rec.Constitution,
		dnd5e.AbilityIntelligence: rec.Intelligence,
		dnd5e.AbilityWisdom:       rec.Wisdom,
		dnd5e.AbilityCharisma:     rec.Charisma,
	} {
		if v == nil {
			continue
		}
		if err := scores.Set(ability, *v); err != nil {
			return nil, err
		}
	}
	c.AbilityScores = scores

	if c.Level < dnd5e.MinLevel || c.Level > dnd5e.MaxLevel {
		return nil, errors.InvalidArgumentf("level must be between %d and %d, got %d", dnd5e.MinLevel, dnd5e.MaxLevel, c.Level)
	}
	if c.HitPoints.Maximum < 1 {
		c.HitPoints.Maximum = 1
	}
	if c.HitPoints.Current < 0 {
		c.HitPoints.Current = 0
	}
	if c.HitPoints.Temporary < 0 {
		c.HitPoints.Temporary = 0
	}

	c.SavingThrows = make(dnd5e.SavingThrowProficiencies, len(dnd5e.Abilities))
	for k, v := range rec.SavingThrows {
		c.SavingThrows[dnd5e.Ability(k)] = v
	}
	c.SavingThrows = c.SavingThrows.Normalize()

	c.Skills = make(dnd5e.SkillProficiencies, len(dnd5e.Skills))
	for k, v := range rec.Skills {
		c.Skills[dnd5e.Skill(k)] = v
	}
	c.Skills = c.Skills.Normalize()

	if rec.SpellcastingAbility != "" {
		ability, err := dnd5e.ParseAbility(rec.SpellcastingAbility)
		if err != nil {
			return nil, err
		}
		sc := &dnd5e.SpellcastingProfile{
			Class:          rec.SpellcastingClass,
			Ability:        ability,
			SaveDC:         rec.SpellSaveDC,
			AttackBonus:    rec.SpellAttackBonus,
			SpellsKnown:    emptyToNil(rec.SpellsKnown),
			SpellsPrepared: emptyToNil(rec.SpellsPrepared),
		}
		for i, level := range dnd5e.SpellSlotLevels {
			total := max(rec.SpellSlots[level.String()], 0)
			expended := min(max(rec.SpellSlotsExpended[level.String()], 0), total)
			sc.Slots[i] = dnd5e.SpellSlot{Total: total, Expended: expended}
		}
		c.Spellcasting = sc
	}

	for _, ir := range rec.Inventory {
		item, err := itemFromRecord(ir)
		if err != nil {
			return nil, err
		}
		c.Inventory = append(c.Inventory, item)
	}

	return c, nil
}

func itemFromRecord(rec itemRecord) (dnd5e.InventoryItem, error) {
	rarity, err := dnd5e.ParseRarity(rec.Rarity)
	if err != nil {
		return dnd5e.InventoryItem{}, err
	}
	itemType := rec.ItemType
	if itemType == "" {
		itemType = dnd5e.DefaultItemType
	}
	return dnd5e.InventoryItem{
		Name:        rec.Name,
		Weight:      rec.Weight,
		Rarity:      rarity,
		Quantity:    max(rec.Quantity, 1),
		Description: rec.Description,
		ValueGP:     rec.ValueGP,
		ItemType:    itemType,
		Magical:     rec.Magical,
		Attuned:     rec.Attuned,
	}, nil
}

// InventoryDocument is the standalone inventory file the original inventory
// tool wrote: {"character_name": ..., "items": [...]}
type InventoryDocument struct {
	CharacterName string
	Items         []dnd5e.InventoryItem
}

// DecodeInventoryDocument parses a standalone inventory file. Every item is
// validated; the first bad item fails the whole document.
func DecodeInventoryDocument(data []byte) (*InventoryDocument, error) {
	var doc struct {
		CharacterName string       `json:"character_name"`
		Items         []itemRecord `json:"items"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed inventory document")
	}

	out := &InventoryDocument{CharacterName: doc.CharacterName}
	for i, rec := range doc.Items {
		item, err := itemFromRecord(rec)
		if err == nil {
			err = item.Validate()
		}
		if err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "invalid inventory item %d", i+1)
		}
		out.Items = append(out.Items, item)
	}
	return out, nil
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return append([]string(nil), in...)
}

func emptyToNil(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	return in
}
