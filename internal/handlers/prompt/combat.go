package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/character-maker/internal/engine"
	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-maker/internal/services/character"
)

func (s *Session) currentSheet(ctx context.Context) (*engine.CharacterSheet, error) {
	out, err := s.characters.GetSheet(ctx, &character.GetSheetInput{Name: s.current})
	if err != nil {
		return nil, err
	}
	return out.Sheet, nil
}

func (s *Session) combatReference(ctx context.Context) error {
	for s.current != "" {
		sheet, err := s.currentSheet(ctx)
		if err != nil {
			return err
		}

		s.printf("\n%s\nCOMBAT REFERENCE: %s\n%s\n", rule, strings.ToUpper(sheet.Name), rule)
		s.printf("AC: %d | Initiative: %s | Speed: %d ft\n",
			sheet.ArmorClass, engine.FormatModifier(sheet.Initiative), sheet.Speed)
		s.printf("HP: %s | Proficiency: %s\n",
			formatHitPoints(sheet.HitPoints), engine.FormatModifier(sheet.ProficiencyBonus))

		s.println("\n1. Hit Points")
		s.println("2. Ability Modifiers")
		s.println("3. Saving Throws")
		s.println("4. Skills")
		s.println("5. Spellcasting")
		s.println("6. Attacks")
		s.println("7. Conditions & Notes")
		s.println("0. Return to Main Menu")

		choice, err := s.ask("\nChoose: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = s.hitPointMenu(ctx)
		case "2":
			s.println("\nABILITY MODIFIERS")
			for _, line := range sheet.Abilities {
				s.printf("  %s: %s\n", line.Ability.Short(), engine.FormatModifier(line.Modifier))
			}
		case "3":
			s.println("\nSAVING THROWS")
			for _, line := range sheet.SavingThrows {
				s.printf("  %s %s: %s\n", proficiencyMark(line.Proficient), line.Ability.DisplayName(), engine.FormatModifier(line.Modifier))
			}
		case "4":
			s.printSkillGroups(sheet)
		case "5":
			err = s.spellSlotMenu(ctx, sheet)
		case "6":
			s.println("\nATTACKS")
			renderAttacks(s.out, sheet.Attacks)
		case "7":
			err = s.conditionsMenu(ctx)
		case "0":
			return nil
		default:
			s.println("Invalid choice.")
		}

		if err := s.report(err); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) printSkillGroups(sheet *engine.CharacterSheet) {
	bySkill := make(map[dnd5e.Skill]engine.SkillLine, len(sheet.Skills))
	for _, line := range sheet.Skills {
		bySkill[line.Skill] = line
	}

	s.println("\nSKILLS")
	for _, group := range dnd5e.SkillDisplayGroups {
		s.printf("%s:\n", group.Ability.DisplayName())
		for _, skill := range group.Skills {
			line := bySkill[skill]
			s.printf("  %s %s: %s\n", proficiencyMark(line.Proficient), skill.DisplayName(), engine.FormatModifier(line.Modifier))
		}
	}
	s.printf("Passive Perception: %d\n", sheet.PassivePerception)
}

func (s *Session) hitPointMenu(ctx context.Context) error {
	s.println("\n--- HIT POINTS ---")
	s.println("1. Take Damage")
	s.println("2. Heal")
	s.println("3. Add Temporary HP")
	s.println("4. Remove Temporary HP")
	s.println("5. Set Current HP")
	s.println("6. Set Max HP")
	s.println("7. Recalculate Max HP")
	s.println("0. Back")

	choice, err := s.ask("Choose: ")
	if err != nil {
		return err
	}

	name := s.current
	var hp dnd5e.HitPointState

	switch choice {
	case "1":
		amount, err := s.askInt("Damage amount: ")
		if err != nil {
			return err
		}
		out, err := s.characters.Damage(ctx, &character.DamageInput{Name: name, Amount: amount})
		if err != nil {
			return err
		}
		if out.Result.Absorbed > 0 {
			s.printf("Temporary hit points absorbed %d damage.\n", out.Result.Absorbed)
		}
		s.printf("Took %d damage.\n", out.Result.Applied)
		hp = out.HitPoints
	case "2":
		amount, err := s.askInt("Healing amount: ")
		if err != nil {
			return err
		}
		out, err := s.characters.Heal(ctx, &character.HealInput{Name: name, Amount: amount})
		if err != nil {
			return err
		}
		s.printf("Healed %d hit points.\n", out.Healed)
		hp = out.HitPoints
	case "3", "5", "6":
		prompts := map[string]string{
			"3": "Temporary hit points to add: ",
			"5": "New current hit points: ",
			"6": "New maximum hit points: ",
		}
		amount, err := s.askInt(prompts[choice])
		if err != nil {
			return err
		}
		in := &character.HitPointAmountInput{Name: name, Amount: amount}
		var out *character.HitPointsOutput
		switch choice {
		case "3":
			out, err = s.characters.GrantTemporaryHitPoints(ctx, in)
		case "5":
			out, err = s.characters.SetCurrentHitPoints(ctx, in)
		default:
			out, err = s.characters.ChangeMaximumHitPoints(ctx, in)
		}
		if err != nil {
			return err
		}
		hp = out.HitPoints
	case "4":
		out, err := s.characters.ClearTemporaryHitPoints(ctx, &character.CharacterNameInput{Name: name})
		if err != nil {
			return err
		}
		hp = out.HitPoints
	case "7":
		return s.recalculateHitPoints(ctx)
	case "0":
		return nil
	default:
		s.println("Invalid choice.")
		return nil
	}

	s.printf("HP: %s\n", formatHitPoints(hp))
	return nil
}

// recalculateHitPoints re-applies a hit point method at the current level
func (s *Session) recalculateHitPoints(ctx context.Context) error {
	s.println("Hit point method:")
	for i, m := range dnd5e.HitPointMethods {
		s.printf("  %d. %s\n", i+1, m)
	}
	pick, err := s.askIntInRange("Choose method: ", 1, len(dnd5e.HitPointMethods), 2)
	if err != nil {
		return err
	}

	in := &character.SetHitPointsInput{Name: s.current, Method: dnd5e.HitPointMethods[pick-1]}
	if in.Method == dnd5e.HitPointMethodCustom {
		if in.Custom, err = s.askInt("Maximum hit points: "); err != nil {
			return err
		}
	}

	out, err := s.characters.SetHitPoints(ctx, in)
	if err != nil {
		return err
	}
	if len(out.HitPoints.Rolls) > 0 {
		s.printf("Rolls: %v\n", out.HitPoints.Rolls)
	}
	if out.HitPoints.Raised {
		s.println("Hit points were raised to the minimum of 1.")
	}
	s.printf("HP: %s\n", formatHitPoints(out.Character.HitPoints))
	return nil
}

func (s *Session) spellSlotMenu(ctx context.Context, sheet *engine.CharacterSheet) error {
	sc := sheet.Spellcasting
	if sc == nil {
		s.println("This character has no spellcasting.")
		return nil
	}

	s.println("\nSPELLCASTING")
	s.printf("Spell Save DC: %d | Spell Attack: %s\n", sc.SaveDC, engine.FormatModifier(sc.AttackBonus))
	renderSlots(s.out, sc.Slots)

	s.println("\n1. Use Spell Slot")
	s.println("2. Recover Spell Slot")
	s.println("3. Long Rest (reset all slots)")
	s.println("0. Back")

	choice, err := s.ask("Choose: ")
	if err != nil {
		return err
	}

	switch choice {
	case "1", "2":
		text, err := s.ask("Slot level (1-9): ")
		if err != nil {
			return err
		}
		level, err := dnd5e.ParseSpellSlotLevel(text)
		if err != nil {
			return err
		}
		in := &character.SpellSlotInput{Name: s.current, Level: level}
		var out *character.SpellSlotOutput
		if choice == "1" {
			out, err = s.characters.UseSpellSlot(ctx, in)
		} else {
			out, err = s.characters.RecoverSpellSlot(ctx, in)
		}
		if err != nil {
			return err
		}
		s.printf("%s level slots: %d/%d remaining\n", out.Level, out.Slot.Remaining(), out.Slot.Total)
	case "3":
		if _, err := s.characters.ResetSpellSlots(ctx, &character.CharacterNameInput{Name: s.current}); err != nil {
			return err
		}
		s.println("All spell slots restored.")
	case "0":
	default:
		s.println("Invalid choice.")
	}
	return nil
}

func (s *Session) conditionsMenu(ctx context.Context) error {
	c, err := s.currentCharacter(ctx)
	if err != nil {
		return err
	}

	s.println("\nCONDITIONS")
	s.printNumbered(c.Conditions, "  None")
	s.println("COMBAT NOTES")
	s.printNumbered(c.CombatNotes, "  None")

	s.println("\n1. Add Condition")
	s.println("2. Remove Condition")
	s.println("3. Add Note")
	s.println("4. Remove Note")
	s.println("5. Clear All")
	s.println("0. Back")

	choice, err := s.ask("Choose: ")
	if err != nil {
		return err
	}

	switch choice {
	case "1", "3":
		text, err := s.ask("Enter text: ")
		if err != nil {
			return err
		}
		in := &character.AddEntryInput{Name: c.Name, Text: text}
		if choice == "1" {
			_, err = s.characters.AddCondition(ctx, in)
		} else {
			_, err = s.characters.AddNote(ctx, in)
		}
		return err
	case "2", "4":
		index, err := s.askInt("Enter number to remove: ")
		if err != nil {
			return err
		}
		in := &character.RemoveEntryInput{Name: c.Name, Index: index}
		var out *character.RemoveEntryOutput
		if choice == "2" {
			out, err = s.characters.RemoveCondition(ctx, in)
		} else {
			out, err = s.characters.RemoveNote(ctx, in)
		}
		if err != nil {
			return err
		}
		s.printf("Removed: %s\n", out.Removed)
	case "5":
		yes, err := s.askYesNo(fmt.Sprintf("Clear all conditions and notes for %s? (y/N): ", c.Name))
		if err != nil || !yes {
			return err
		}
		if _, err := s.characters.ClearConditionsAndNotes(ctx, &character.CharacterNameInput{Name: c.Name}); err != nil {
			return err
		}
		s.println("Conditions and notes cleared.")
	case "0":
	default:
		s.println("Invalid choice.")
	}
	return nil
}
