package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/character-maker/internal/engine"
	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	charorch "github.com/KirkDiggler/character-maker/internal/orchestrators/character"
	"github.com/KirkDiggler/character-maker/internal/services/character"
)

func (s *Session) currentCharacter(ctx context.Context) (*dnd5e.Character, error) {
	out, err := s.characters.GetCharacter(ctx, &character.GetCharacterInput{Name: s.current})
	if err != nil {
		return nil, err
	}
	return out.Character, nil
}

func (s *Session) editMenu(ctx context.Context) error {
	sections := map[string]func(context.Context) error{
		"1": s.editBasicInfo,
		"2": s.editAbilityScores,
		"3": s.editCombatStats,
		"4": s.editProficiencies,
		"5": s.editSpellcasting,
		"6": s.editFeatures,
		"7": s.viewSheet,
	}

	for s.current != "" {
		s.printf("\n--- EDIT CHARACTER: %s ---\n", s.current)
		s.println("1. Basic Information")
		s.println("2. Ability Scores")
		s.println("3. Combat Stats")
		s.println("4. Proficiencies")
		s.println("5. Spellcasting")
		s.println("6. Features & Traits")
		s.println("7. View Character Sheet")
		s.println("0. Return to Main Menu")

		choice, err := s.ask("\nChoose section to edit: ")
		if err != nil {
			return err
		}
		if choice == "0" {
			return nil
		}

		section, ok := sections[choice]
		if !ok {
			s.println("Invalid choice.")
			continue
		}
		if err := s.report(section(ctx)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) editBasicInfo(ctx context.Context) error {
	c, err := s.currentCharacter(ctx)
	if err != nil {
		return err
	}

	s.println("\n--- BASIC INFORMATION (Enter keeps the current value) ---")
	in := &character.UpdateBasicInfoInput{Name: c.Name}
	fields := []struct {
		prompt string
		target **string
	}{
		{fmt.Sprintf("Character name [%s]: ", c.Name), &in.NewName},
		{fmt.Sprintf("Player name [%s]: ", c.PlayerName), &in.PlayerName},
		{fmt.Sprintf("Race [%s]: ", c.Race), &in.Race},
		{fmt.Sprintf("Background [%s]: ", c.Background), &in.Background},
		{fmt.Sprintf("Alignment [%s]: ", c.Alignment), &in.Alignment},
	}
	for _, f := range fields {
		if *f.target, err = s.askOptional(f.prompt); err != nil {
			return err
		}
	}

	xp, ok, err := s.askOptionalInt(fmt.Sprintf("Experience points [%d]: ", c.ExperiencePoints))
	if err != nil {
		return err
	}
	if ok {
		in.ExperiencePoints = &xp
	}

	classIn := &character.UpdateClassInput{}
	if classIn.Class, err = s.askOptional(fmt.Sprintf("Class [%s]: ", c.Class)); err != nil {
		return err
	}
	if classIn.Subclass, err = s.askOptional(fmt.Sprintf("Subclass [%s]: ", c.Subclass)); err != nil {
		return err
	}
	level, ok, err := s.askOptionalInt(fmt.Sprintf("Level [%d]: ", c.Level))
	if err != nil {
		return err
	}
	if ok {
		classIn.Level = &level
	}

	out, err := s.characters.UpdateBasicInfo(ctx, in)
	if err != nil {
		return err
	}
	s.current = out.Character.Name

	if classIn.Class != nil || classIn.Subclass != nil || classIn.Level != nil {
		classIn.Name = s.current
		out, err = s.characters.UpdateClass(ctx, classIn)
		if err != nil {
			return err
		}
		s.printChanged(out.Changed)
	}

	s.println("Basic information updated.")
	return nil
}

func (s *Session) editAbilityScores(ctx context.Context) error {
	c, err := s.currentCharacter(ctx)
	if err != nil {
		return err
	}

	s.println("\n--- ABILITY SCORES (Enter keeps the current value) ---")
	scores := make(map[dnd5e.Ability]int)
	for _, a := range dnd5e.Abilities {
		current := c.AbilityScores.Get(a)
		prompt := fmt.Sprintf("%s [%d (%s)]: ", a.DisplayName(), current, engine.FormatModifier(engine.Modifier(current)))
		score, err := s.askIntInRange(prompt, dnd5e.MinAbilityScore, dnd5e.MaxAbilityScore, current)
		if err != nil {
			return err
		}
		if score != current {
			scores[a] = score
		}
	}
	if len(scores) == 0 {
		s.println("No changes.")
		return nil
	}

	out, err := s.characters.UpdateAbilityScores(ctx, &character.UpdateAbilityScoresInput{Name: c.Name, Scores: scores})
	if err != nil {
		return err
	}
	s.printChanged(out.Changed)
	s.println("Ability scores updated.")
	return nil
}

func (s *Session) editCombatStats(ctx context.Context) error {
	c, err := s.currentCharacter(ctx)
	if err != nil {
		return err
	}

	s.println("\n--- COMBAT STATS (Enter keeps the current value) ---")
	in := &character.UpdateCombatStatsInput{Name: c.Name}

	ac, err := s.askOptional(fmt.Sprintf("Armor Class [%d] (d for 10 + DEX): ", c.ArmorClass))
	if err != nil {
		return err
	}
	if ac != nil {
		if strings.EqualFold(*ac, "d") {
			in.UseDefaultArmorClass = true
		} else if n, ok := parseInt(*ac); ok {
			in.ArmorClass = &n
		} else {
			s.println("Invalid armor class, keeping the current value.")
		}
	}

	if speed, ok, err := s.askOptionalInt(fmt.Sprintf("Speed [%d]: ", c.Speed)); err != nil {
		return err
	} else if ok {
		in.Speed = &speed
	}
	if in.HitDice, err = s.askOptional(fmt.Sprintf("Hit dice [%s]: ", c.HitDice)); err != nil {
		return err
	}
	if prof, ok, err := s.askOptionalInt(fmt.Sprintf("Proficiency bonus [%d]: ", c.ProficiencyBonus)); err != nil {
		return err
	} else if ok {
		in.ProficiencyBonus = &prof
	}

	if _, err := s.characters.UpdateCombatStats(ctx, in); err != nil {
		return err
	}

	if err := s.editHitPointNumbers(ctx, c.Name, c.HitPoints); err != nil {
		return err
	}
	s.println("Combat stats updated.")
	return nil
}

// editHitPointNumbers sets maximum, current and temporary hit points directly
func (s *Session) editHitPointNumbers(ctx context.Context, name string, hp dnd5e.HitPointState) error {
	if maximum, ok, err := s.askOptionalInt(fmt.Sprintf("Max hit points [%d]: ", hp.Maximum)); err != nil {
		return err
	} else if ok {
		if _, err := s.characters.ChangeMaximumHitPoints(ctx, &character.HitPointAmountInput{Name: name, Amount: maximum}); err != nil {
			return err
		}
	}

	if current, ok, err := s.askOptionalInt(fmt.Sprintf("Current hit points [%d]: ", hp.Current)); err != nil {
		return err
	} else if ok {
		if _, err := s.characters.SetCurrentHitPoints(ctx, &character.HitPointAmountInput{Name: name, Amount: current}); err != nil {
			return err
		}
	}

	temp, ok, err := s.askOptionalInt(fmt.Sprintf("Temporary hit points [%d]: ", hp.Temporary))
	if err != nil || !ok {
		return err
	}
	if _, err := s.characters.ClearTemporaryHitPoints(ctx, &character.CharacterNameInput{Name: name}); err != nil {
		return err
	}
	if temp == 0 {
		return nil
	}
	_, err = s.characters.GrantTemporaryHitPoints(ctx, &character.HitPointAmountInput{Name: name, Amount: temp})
	return err
}

func (s *Session) editProficiencies(ctx context.Context) error {
	c, err := s.currentCharacter(ctx)
	if err != nil {
		return err
	}

	s.println("\n--- PROFICIENCIES ---")
	s.println("1. Saving Throws")
	s.println("2. Skills")
	s.println("3. Languages")
	s.println("4. Other Proficiencies")
	s.println("0. Back")

	choice, err := s.ask("Choose: ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		for _, a := range dnd5e.Abilities {
			yes, err := s.askToggle(a.DisplayName(), c.SavingThrows[a])
			if err != nil {
				return err
			}
			if yes == c.SavingThrows[a] {
				continue
			}
			if _, err := s.characters.SetSavingThrowProficiency(ctx, &character.SetSavingThrowProficiencyInput{
				Name: c.Name, Ability: a, Proficient: yes,
			}); err != nil {
				return err
			}
		}
	case "2":
		for _, skill := range dnd5e.Skills {
			yes, err := s.askToggle(skill.DisplayName(), c.Skills[skill])
			if err != nil {
				return err
			}
			if yes == c.Skills[skill] {
				continue
			}
			if _, err := s.characters.SetSkillProficiency(ctx, &character.SetSkillProficiencyInput{
				Name: c.Name, Skill: skill, Proficient: yes,
			}); err != nil {
				return err
			}
		}
	case "3":
		s.printf("Current languages: %s\n", strings.Join(c.Languages, ", "))
		line, err := s.ask("Enter languages (comma separated): ")
		if err != nil {
			return err
		}
		if _, err := s.characters.SetLanguages(ctx, &character.SetListInput{Name: c.Name, Values: charorch.SplitList(line)}); err != nil {
			return err
		}
	case "4":
		s.printf("Current proficiencies: %s\n", strings.Join(c.OtherProficiencies, ", "))
		line, err := s.ask("Enter other proficiencies (comma separated): ")
		if err != nil {
			return err
		}
		if _, err := s.characters.SetOtherProficiencies(ctx, &character.SetListInput{Name: c.Name, Values: charorch.SplitList(line)}); err != nil {
			return err
		}
	case "0":
		return nil
	default:
		s.println("Invalid choice.")
		return nil
	}

	s.println("Proficiencies updated.")
	return nil
}

// askToggle shows the current flag; an empty answer keeps it
func (s *Session) askToggle(label string, current bool) (bool, error) {
	mark := "n"
	if current {
		mark = "y"
	}
	line, err := s.ask(fmt.Sprintf("  %s [%s] (y/n): ", label, mark))
	if err != nil || line == "" {
		return current, err
	}
	return strings.HasPrefix(strings.ToLower(line), "y"), nil
}

func (s *Session) editSpellcasting(ctx context.Context) error {
	c, err := s.currentCharacter(ctx)
	if err != nil {
		return err
	}

	s.println("\n--- SPELLCASTING ---")
	if c.Spellcasting == nil {
		yes, err := s.askYesNo("Enable spellcasting for this character? (y/n): ")
		if err != nil || !yes {
			return err
		}
		class, ability, err := s.askCasting(c.Class)
		if err != nil {
			return err
		}
		totals, err := s.askSlotTotals([dnd5e.MaxSpellSlotLevel]int{})
		if err != nil {
			return err
		}
		out, err := s.characters.EnableSpellcasting(ctx, &character.EnableSpellcastingInput{
			Name: c.Name, Class: class, Ability: ability, SlotTotals: &totals,
		})
		if err != nil {
			return err
		}
		sc := out.Character.Spellcasting
		s.printf("Spell save DC: %d\n", sc.SaveDC)
		s.printf("Spell attack bonus: %s\n", engine.FormatModifier(sc.AttackBonus))
		return nil
	}

	sc := c.Spellcasting
	s.printf("Class: %s | Ability: %s | DC %d | Attack %s\n",
		sc.Class, sc.Ability.DisplayName(), sc.SaveDC, engine.FormatModifier(sc.AttackBonus))
	s.println("1. Change Class & Ability")
	s.println("2. Spell Slots")
	s.println("3. Spells Known")
	s.println("4. Spells Prepared")
	s.println("5. Disable Spellcasting")
	s.println("0. Back")

	choice, err := s.ask("Choose: ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		class, ability, err := s.askCasting(sc.Class)
		if err != nil {
			return err
		}
		_, err = s.characters.EnableSpellcasting(ctx, &character.EnableSpellcastingInput{Name: c.Name, Class: class, Ability: ability})
		return err
	case "2":
		var current [dnd5e.MaxSpellSlotLevel]int
		for i := range sc.Slots {
			current[i] = sc.Slots[i].Total
		}
		totals, err := s.askSlotTotals(current)
		if err != nil {
			return err
		}
		for _, level := range dnd5e.SpellSlotLevels {
			if totals[level-1] == current[level-1] {
				continue
			}
			if _, err := s.characters.SetSpellSlotTotal(ctx, &character.SetSpellSlotTotalInput{
				Name: c.Name, Level: level, Total: totals[level-1],
			}); err != nil {
				return err
			}
		}
		return nil
	case "3", "4":
		list, existing := character.SpellListKnown, sc.SpellsKnown
		if choice == "4" {
			list, existing = character.SpellListPrepared, sc.SpellsPrepared
		}
		s.printf("Current: %s\n", strings.Join(existing, ", "))
		line, err := s.ask("Spells (comma separated): ")
		if err != nil {
			return err
		}
		_, err = s.characters.SetSpellList(ctx, &character.SetSpellListInput{
			Name: c.Name, List: list, Spells: charorch.SplitList(line),
		})
		return err
	case "5":
		yes, err := s.askYesNo("Disable spellcasting? Slots and spell lists are dropped. (y/N): ")
		if err != nil || !yes {
			return err
		}
		_, err = s.characters.DisableSpellcasting(ctx, &character.CharacterNameInput{Name: c.Name})
		return err
	case "0":
		return nil
	default:
		s.println("Invalid choice.")
		return nil
	}
}

func (s *Session) editFeatures(ctx context.Context) error {
	for {
		c, err := s.currentCharacter(ctx)
		if err != nil {
			return err
		}

		s.println("\n--- FEATURES & TRAITS ---")
		s.printNumbered(c.FeaturesAndTraits, "No features yet.")
		if len(c.CustomAbilities) > 0 {
			s.println("Custom abilities:")
			s.printNumbered(c.CustomAbilities, "")
		}

		s.println("\n1. Add Feature")
		s.println("2. Remove Feature")
		s.println("3. Edit Feature")
		s.println("4. Add Custom Ability")
		s.println("5. Remove Custom Ability")
		s.println("0. Back")

		choice, err := s.ask("Choose: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1", "4":
			list := character.EntryListFeatures
			if choice == "4" {
				list = character.EntryListCustomAbilities
			}
			text, err := s.ask("Enter new entry: ")
			if err != nil {
				return err
			}
			_, err = s.characters.AddFeature(ctx, &character.AddEntryInput{Name: c.Name, List: list, Text: text})
			err = s.report(err)
			if err != nil {
				return err
			}
		case "2", "5":
			list := character.EntryListFeatures
			if choice == "5" {
				list = character.EntryListCustomAbilities
			}
			index, err := s.askInt("Enter entry number to remove: ")
			if err != nil {
				return err
			}
			out, err := s.characters.RemoveFeature(ctx, &character.RemoveEntryInput{Name: c.Name, List: list, Index: index})
			if err != nil {
				if err := s.report(err); err != nil {
					return err
				}
				continue
			}
			s.printf("Removed: %s\n", out.Removed)
		case "3":
			index, err := s.askInt("Enter feature number to edit: ")
			if err != nil {
				return err
			}
			if index < 1 || index > len(c.FeaturesAndTraits) {
				s.println("Invalid feature number.")
				continue
			}
			text, err := s.ask(fmt.Sprintf("Edit feature [%s]: ", c.FeaturesAndTraits[index-1]))
			if err != nil {
				return err
			}
			if text == "" {
				continue
			}
			_, err = s.characters.EditFeature(ctx, &character.EditEntryInput{Name: c.Name, Index: index, Text: text})
			if err := s.report(err); err != nil {
				return err
			}
		case "0":
			return nil
		default:
			s.println("Invalid choice.")
		}
	}
}

func (s *Session) viewSheet(ctx context.Context) error {
	out, err := s.characters.GetSheet(ctx, &character.GetSheetInput{Name: s.current})
	if err != nil {
		return err
	}
	RenderSheet(s.out, out.Sheet)
	return nil
}

func (s *Session) printChanged(changed []string) {
	if len(changed) > 0 {
		s.printf("Recalculated: %s\n", strings.Join(changed, ", "))
	}
}

func (s *Session) printNumbered(values []string, empty string) {
	if len(values) == 0 {
		if empty != "" {
			s.println(empty)
		}
		return
	}
	for i, v := range values {
		s.printf("  %d. %s\n", i+1, v)
	}
}
