package character

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/character-maker/internal/engine"
	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-maker/internal/errors"
	characterrepo "github.com/KirkDiggler/character-maker/internal/repositories/character"
	"github.com/KirkDiggler/character-maker/internal/services/character"
)

// PreviewHitPoints runs a hit point method for the wizard without touching the store
func (o *Orchestrator) PreviewHitPoints(
	ctx context.Context,
	input *character.PreviewHitPointsInput,
) (*character.PreviewHitPointsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	def, err := dnd5e.ClassInfo(input.Class)
	if err != nil {
		return nil, err
	}
	if err := dnd5e.ValidateAbilityScore(dnd5e.AbilityConstitution, input.ConstitutionScore); err != nil {
		return nil, err
	}

	hp, err := o.engine.CalculateHitPoints(ctx, &engine.CalculateHitPointsInput{
		Method:            input.Method,
		HitDie:            def.HitDie,
		ConstitutionScore: input.ConstitutionScore,
		Level:             input.Level,
		Custom:            input.Custom,
	})
	if err != nil {
		return nil, err
	}

	return &character.PreviewHitPointsOutput{HitDie: def.HitDie, HitPoints: hp}, nil
}

// FinalizeDraft validates everything the wizard gathered and stores the new record
func (o *Orchestrator) FinalizeDraft(
	ctx context.Context,
	input *character.FinalizeDraftInput,
) (*character.FinalizeDraftOutput, error) {
	if input == nil || input.Draft == nil {
		return nil, errors.InvalidArgument("draft is required")
	}
	draft := input.Draft
	name := strings.TrimSpace(draft.Name)

	def, err := validateDraft(draft)
	if err != nil {
		return nil, err
	}

	// Reject a taken name before any dice are rolled.
	if _, err := o.characterRepo.Get(ctx, characterrepo.GetInput{Name: name}); err == nil {
		return nil, errors.AlreadyExistsf("a character named %q already exists", name)
	} else if !errors.IsNotFound(err) {
		return nil, err
	}

	hp, err := o.engine.CalculateHitPoints(ctx, &engine.CalculateHitPointsInput{
		Method:            draft.HitPointMethod,
		HitDie:            def.HitDie,
		ConstitutionScore: draft.AbilityScores.Constitution,
		Level:             draft.Level,
		Custom:            draft.CustomHitPoints,
	})
	if err != nil {
		return nil, err
	}

	record, err := o.buildRecord(ctx, name, def, draft, hp.Maximum)
	if err != nil {
		return nil, err
	}

	created, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: record})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "character created",
		"name", created.Character.Name,
		"class", created.Character.Class,
		"level", created.Character.Level,
		"hp_method", hp.Method)
	o.save(ctx)

	return &character.FinalizeDraftOutput{Character: created.Character, HitPoints: hp}, nil
}

func validateDraft(draft *dnd5e.CharacterDraft) (*dnd5e.ClassDefinition, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", strings.TrimSpace(draft.Name), vb)
	errors.ValidateRange("level", draft.Level, dnd5e.MinLevel, dnd5e.MaxLevel, vb)
	for _, a := range dnd5e.Abilities {
		errors.ValidateRange(string(a), draft.AbilityScores.Get(a), dnd5e.MinAbilityScore, dnd5e.MaxAbilityScore, vb)
	}
	for _, a := range draft.SavingThrows {
		if !a.Valid() {
			vb.InvalidField("saving_throws", "unknown ability "+string(a))
		}
	}
	if draft.Speed < 0 {
		vb.Fieldf("speed", "must not be negative, got %d", draft.Speed)
	}
	if draft.ArmorClass != nil && *draft.ArmorClass < 0 {
		vb.Fieldf("armor_class", "must not be negative, got %d", *draft.ArmorClass)
	}
	if sc := draft.Spellcasting; sc != nil {
		if !sc.Ability.IsCastingAbility() {
			vb.InvalidField("spellcasting_ability", "must be intelligence, wisdom or charisma")
		}
		for i, total := range sc.SlotTotals {
			if total < 0 {
				vb.Fieldf("spell_slots", "%s level total must not be negative, got %d", dnd5e.SpellSlotLevel(i+1), total)
			}
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if err := dnd5e.ValidateSkillSelection(draft.Skills); err != nil {
		return nil, err
	}

	return dnd5e.ClassInfo(draft.Class)
}

func (o *Orchestrator) buildRecord(
	ctx context.Context,
	name string,
	def *dnd5e.ClassDefinition,
	draft *dnd5e.CharacterDraft,
	maxHP int,
) (*dnd5e.Character, error) {
	hitPoints, err := dnd5e.NewHitPointState(maxHP)
	if err != nil {
		return nil, err
	}

	saves := draft.SavingThrows
	if len(saves) == 0 {
		saves = def.SavingThrows[:]
	}

	speed := draft.Speed
	if speed == 0 {
		speed = dnd5e.DefaultSpeed
	}

	armorClass := engine.DefaultArmorClass(draft.AbilityScores.Dexterity)
	if draft.ArmorClass != nil {
		armorClass = *draft.ArmorClass
	}

	c := &dnd5e.Character{
		ID:                 o.idGenerator.Generate(),
		Name:               name,
		PlayerName:         strings.TrimSpace(draft.PlayerName),
		Race:               strings.TrimSpace(draft.Race),
		Background:         strings.TrimSpace(draft.Background),
		Alignment:          strings.TrimSpace(draft.Alignment),
		Class:              def.Name,
		Subclass:           strings.TrimSpace(draft.Subclass),
		Level:              draft.Level,
		AbilityScores:      draft.AbilityScores,
		ArmorClass:         armorClass,
		Speed:              speed,
		HitPoints:          hitPoints,
		SavingThrows:       dnd5e.NewSavingThrowProficiencies(saves...),
		Skills:             dnd5e.NewSkillProficiencies(draft.Skills...),
		Languages:          cleanList(draft.Languages),
		OtherProficiencies: cleanList(draft.OtherProficiencies),
		Status:             dnd5e.CharacterStatusDraft,
	}

	if sc := draft.Spellcasting; sc != nil {
		profile := &dnd5e.SpellcastingProfile{
			Class:   strings.TrimSpace(sc.Class),
			Ability: sc.Ability,
		}
		if profile.Class == "" {
			profile.Class = def.Name
		}
		for i, total := range sc.SlotTotals {
			if err := profile.Slots.ChangeTotal(dnd5e.SpellSlotLevel(i+1), total); err != nil {
				return nil, err
			}
		}
		c.Spellcasting = profile
	}

	// Seeds proficiency bonus, hit dice, initiative and spell numbers.
	if _, err := o.engine.ApplyLevelChange(ctx, &engine.ApplyLevelChangeInput{Character: c}); err != nil {
		return nil, err
	}
	return c, nil
}
