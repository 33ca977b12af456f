package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/character-maker/internal/engine"
	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-maker/internal/errors"
	charorch "github.com/KirkDiggler/character-maker/internal/orchestrators/character"
	"github.com/KirkDiggler/character-maker/internal/orchestrators/dice"
	"github.com/KirkDiggler/character-maker/internal/services/character"
)

func (s *Session) createCharacter(ctx context.Context) error {
	s.println("\n--- CREATE NEW CHARACTER ---")
	name, err := s.ask("Character name: ")
	if err != nil {
		return err
	}
	if name == "" {
		s.println("Character name cannot be empty.")
		return nil
	}

	_, err = s.characters.GetCharacter(ctx, &character.GetCharacterInput{Name: name})
	switch {
	case err == nil:
		s.printf("Character '%s' already exists.\n", name)
		return nil
	case !errors.IsNotFound(err):
		return err
	}

	draft := dnd5e.NewCharacterDraft(name)
	s.printf("\nCreating character: %s\n", name)
	s.println("Let's set up your character step by step...")

	steps := []func(context.Context, *dnd5e.CharacterDraft) error{
		s.draftBasics,
		s.draftAbilityScores,
		s.draftHitPoints,
		s.draftProficiencies,
		s.draftCombatStats,
		s.draftSpellcasting,
	}
	for _, step := range steps {
		if err := step(ctx, draft); err != nil {
			return err
		}
	}

	out, err := s.characters.FinalizeDraft(ctx, &character.FinalizeDraftInput{Draft: draft})
	if err != nil {
		return err
	}

	c := out.Character
	s.current = c.Name
	s.printf("\nProficiency bonus: %s\n", engine.FormatModifier(c.ProficiencyBonus))
	s.printf("Hit points: %d", c.HitPoints.Maximum)
	if len(out.HitPoints.Rolls) > 0 {
		s.printf(" (rolled %v)", out.HitPoints.Rolls)
	}
	s.println()
	s.printf("AC: %d | Initiative: %s | Speed: %d ft\n", c.ArmorClass, engine.FormatModifier(c.Initiative), c.Speed)
	if c.Spellcasting != nil {
		s.printf("Spell save DC: %d | Spell attack bonus: %s\n",
			c.Spellcasting.SaveDC, engine.FormatModifier(c.Spellcasting.AttackBonus))
	}
	s.printf("\nCharacter '%s' created successfully!\n", c.Name)
	s.println("You can now edit additional details using the Edit Character menu.")
	return nil
}

func (s *Session) draftBasics(_ context.Context, d *dnd5e.CharacterDraft) error {
	var err error
	if d.PlayerName, err = s.ask("Player name (optional): "); err != nil {
		return err
	}
	if d.Race, err = s.ask("Race: "); err != nil {
		return err
	}

	class, err := s.askClass()
	if err != nil {
		return err
	}
	d.Class = class.Name

	if len(class.Subclasses) > 0 {
		names := make([]string, len(class.Subclasses))
		for i, sc := range class.Subclasses {
			names[i] = sc.Name
		}
		s.printf("Subclasses: %s\n", strings.Join(names, ", "))
	}
	if d.Subclass, err = s.ask("Subclass (optional): "); err != nil {
		return err
	}

	if d.Level, err = s.askIntInRange("Level (1-20, default 1): ", dnd5e.MinLevel, dnd5e.MaxLevel, dnd5e.MinLevel); err != nil {
		return err
	}
	if d.Background, err = s.ask("Background: "); err != nil {
		return err
	}
	d.Alignment, err = s.ask("Alignment: ")
	return err
}

// askClass re-prompts until the answer names a catalog class
func (s *Session) askClass() (*dnd5e.ClassDefinition, error) {
	classes := dnd5e.Classes()
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.Name
	}
	s.printf("Classes: %s\n", strings.Join(names, ", "))

	for {
		answer, err := s.ask("Class: ")
		if err != nil {
			return nil, err
		}
		class, err := dnd5e.ClassInfo(answer)
		if err == nil {
			return class, nil
		}
		s.println(errors.GetMessage(err))
	}
}

func (s *Session) draftAbilityScores(ctx context.Context, d *dnd5e.CharacterDraft) error {
	s.println("\n--- ABILITY SCORES ---")
	s.println("1. Enter scores")
	s.println("2. Roll 4d6, drop lowest")
	s.println("3. Roll 3d6")

	choice, err := s.ask("Choose (1-3, default 1): ")
	if err != nil {
		return err
	}

	method := ""
	switch choice {
	case "2":
		method = dice.MethodStandard
	case "3":
		method = dice.MethodClassic
	}
	if method == "" {
		return s.enterAbilityScores(&d.AbilityScores)
	}

	rolled, err := s.dice.RollAbilityScores(ctx, &dice.RollAbilityScoresInput{Method: method})
	if err != nil {
		return err
	}
	for i, a := range dnd5e.Abilities {
		roll := rolled.Rolls[i]
		if err := d.AbilityScores.Set(a, roll.Total); err != nil {
			return err
		}
		s.printf("%s: %d %v", a.DisplayName(), roll.Total, roll.Dice)
		if len(roll.Dropped) > 0 {
			s.printf(" dropped %v", roll.Dropped)
		}
		s.println()
	}
	return nil
}

// enterAbilityScores reads each score; an empty line keeps the current value
func (s *Session) enterAbilityScores(scores *dnd5e.AbilityScores) error {
	s.printf("Enter ability scores (%d-%d, Enter keeps %d):\n",
		dnd5e.MinAbilityScore, dnd5e.MaxAbilityScore, dnd5e.DefaultAbilityScore)
	for _, a := range dnd5e.Abilities {
		score, err := s.askIntInRange(a.DisplayName()+": ",
			dnd5e.MinAbilityScore, dnd5e.MaxAbilityScore, scores.Get(a))
		if err != nil {
			return err
		}
		if err := scores.Set(a, score); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) draftHitPoints(ctx context.Context, d *dnd5e.CharacterDraft) error {
	s.println("\n--- HIT POINTS ---")
	for i, m := range dnd5e.HitPointMethods {
		line := fmt.Sprintf("%d. %s", i+1, m)
		if m == dnd5e.HitPointMethodMaximum || m == dnd5e.HitPointMethodAverage {
			preview, err := s.characters.PreviewHitPoints(ctx, &character.PreviewHitPointsInput{
				Class:             d.Class,
				Level:             d.Level,
				ConstitutionScore: d.AbilityScores.Constitution,
				Method:            m,
			})
			if err != nil {
				return err
			}
			line += fmt.Sprintf(" (%d, d%d)", preview.HitPoints.Maximum, preview.HitDie)
		}
		s.println(line)
	}

	choice, err := s.askIntInRange("Method (default 2): ", 1, len(dnd5e.HitPointMethods), 2)
	if err != nil {
		return err
	}
	d.HitPointMethod = dnd5e.HitPointMethods[choice-1]

	if d.HitPointMethod == dnd5e.HitPointMethodCustom {
		d.CustomHitPoints, err = s.askIntInRange("Hit point maximum: ", 1, 1<<20, 1)
	}
	return err
}

func (s *Session) draftProficiencies(_ context.Context, d *dnd5e.CharacterDraft) error {
	s.println("\n--- PROFICIENCIES ---")
	s.println("Saving throw proficiencies (answer n to all for the class defaults):")
	for _, a := range dnd5e.Abilities {
		yes, err := s.askYesNo(fmt.Sprintf("  %s saving throw? (y/n): ", a.DisplayName()))
		if err != nil {
			return err
		}
		if yes {
			d.SavingThrows = append(d.SavingThrows, a)
		}
	}

	s.printf("\nSkill proficiencies (at most %d per group):\n", dnd5e.MaxSkillPicksPerGroup)
	for _, group := range dnd5e.SkillSelectionGroups {
		picked := 0
		for _, skill := range group {
			if picked >= dnd5e.MaxSkillPicksPerGroup {
				break
			}
			yes, err := s.askYesNo(fmt.Sprintf("  %s? (y/n): ", skill.DisplayName()))
			if err != nil {
				return err
			}
			if yes {
				d.Skills = append(d.Skills, skill)
				picked++
			}
		}
	}

	line, err := s.ask("Languages (comma separated): ")
	if err != nil {
		return err
	}
	d.Languages = charorch.SplitList(line)
	return nil
}

func (s *Session) draftCombatStats(_ context.Context, d *dnd5e.CharacterDraft) error {
	s.println("\n--- COMBAT STATS ---")
	def := engine.DefaultArmorClass(d.AbilityScores.Dexterity)
	ac, ok, err := s.askOptionalInt(fmt.Sprintf("Armor Class (default 10 + DEX mod = %d): ", def))
	if err != nil {
		return err
	}
	if ok {
		d.ArmorClass = &ac
	}

	d.Speed, err = s.askIntInRange(fmt.Sprintf("Speed in feet (default %d): ", dnd5e.DefaultSpeed), 0, 1000, dnd5e.DefaultSpeed)
	return err
}

func (s *Session) draftSpellcasting(_ context.Context, d *dnd5e.CharacterDraft) error {
	yes, err := s.askYesNo("\nIs this character a spellcaster? (y/n): ")
	if err != nil || !yes {
		return err
	}

	s.println("\n--- SPELLCASTING SETUP ---")
	class, ability, err := s.askCasting(d.Class)
	if err != nil {
		return err
	}
	totals, err := s.askSlotTotals([dnd5e.MaxSpellSlotLevel]int{})
	if err != nil {
		return err
	}

	d.Spellcasting = &dnd5e.DraftSpellcasting{Class: class, Ability: ability, SlotTotals: totals}
	return nil
}

// askCasting reads the spellcasting class (default: the character's class)
// and the casting ability
func (s *Session) askCasting(defaultClass string) (string, dnd5e.Ability, error) {
	class, err := s.ask(fmt.Sprintf("Spellcasting class [%s]: ", defaultClass))
	if err != nil {
		return "", "", err
	}
	if class == "" {
		class = defaultClass
	}

	s.println("Spellcasting ability:")
	for i, a := range dnd5e.CastingAbilities {
		s.printf("%d. %s  ", i+1, a.DisplayName())
	}
	s.println()
	for {
		choice, err := s.askInt(fmt.Sprintf("Choose (1-%d): ", len(dnd5e.CastingAbilities)))
		if err != nil {
			return "", "", err
		}
		if choice >= 1 && choice <= len(dnd5e.CastingAbilities) {
			return class, dnd5e.CastingAbilities[choice-1], nil
		}
		s.printf("Please choose 1 to %d.\n", len(dnd5e.CastingAbilities))
	}
}

// askSlotTotals reads totals from 1st level up; the first empty line stops
// and leaves the remaining levels as they were
func (s *Session) askSlotTotals(current [dnd5e.MaxSpellSlotLevel]int) ([dnd5e.MaxSpellSlotLevel]int, error) {
	s.println("Enter number of spell slots per level (Enter to stop):")
	for _, level := range dnd5e.SpellSlotLevels {
		n, ok, err := s.askOptionalInt(fmt.Sprintf("  %s level slots [%d]: ", level, current[level-1]))
		if err != nil {
			return current, err
		}
		if !ok {
			break
		}
		if n < 0 {
			s.println("Slot totals cannot be negative, keeping the current value.")
			continue
		}
		current[level-1] = n
	}
	return current, nil
}
