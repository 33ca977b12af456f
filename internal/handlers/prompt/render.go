package prompt

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/KirkDiggler/character-maker/internal/engine"
	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-maker/internal/services/inventory"
)

const rule = "============================================================"

// RenderSheet writes the full character sheet as plain text
func RenderSheet(w io.Writer, sheet *engine.CharacterSheet) {
	fmt.Fprintf(w, "\n%s\nCHARACTER SHEET: %s\n%s\n", rule, strings.ToUpper(sheet.Name), rule)

	fmt.Fprintf(w, "Player: %s\n", sheet.PlayerName)
	fmt.Fprintf(w, "Race: %s | Class: %s", sheet.Race, sheet.ClassLevel)
	if sheet.Subclass != "" {
		fmt.Fprintf(w, " (%s)", sheet.Subclass)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Background: %s | Alignment: %s\n", sheet.Background, sheet.Alignment)
	if sheet.NextLevelExperience > 0 {
		fmt.Fprintf(w, "Experience: %d / %d\n", sheet.ExperiencePoints, sheet.NextLevelExperience)
	} else {
		fmt.Fprintf(w, "Experience: %d\n", sheet.ExperiencePoints)
	}

	fmt.Fprintln(w, "\nABILITY SCORES")
	for _, line := range sheet.Abilities {
		fmt.Fprintf(w, "  %s: %2d (%s)\n", line.Ability.Short(), line.Score, engine.FormatModifier(line.Modifier))
	}

	fmt.Fprintln(w, "\nCOMBAT")
	fmt.Fprintf(w, "  Armor Class: %d | Initiative: %s | Speed: %d ft\n",
		sheet.ArmorClass, engine.FormatModifier(sheet.Initiative), sheet.Speed)
	fmt.Fprintf(w, "  Hit Points: %s | Hit Dice: %s\n", formatHitPoints(sheet.HitPoints), sheet.HitDice)
	fmt.Fprintf(w, "  Proficiency Bonus: %s | Passive Perception: %d\n",
		engine.FormatModifier(sheet.ProficiencyBonus), sheet.PassivePerception)

	fmt.Fprintln(w, "\nSAVING THROWS")
	for _, line := range sheet.SavingThrows {
		fmt.Fprintf(w, "  %s %s: %s\n", proficiencyMark(line.Proficient), line.Ability.DisplayName(), engine.FormatModifier(line.Modifier))
	}

	fmt.Fprintln(w, "\nSKILLS")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, line := range sheet.Skills {
		fmt.Fprintf(tw, "  %s %s (%s)\t%s\n", proficiencyMark(line.Proficient), line.Skill.DisplayName(),
			line.Ability.Short(), engine.FormatModifier(line.Modifier))
	}
	_ = tw.Flush()

	fmt.Fprintln(w, "\nATTACKS")
	renderAttacks(w, sheet.Attacks)

	if sc := sheet.Spellcasting; sc != nil {
		fmt.Fprintln(w, "\nSPELLCASTING")
		fmt.Fprintf(w, "  Class: %s | Ability: %s\n", sc.Class, sc.Ability.DisplayName())
		fmt.Fprintf(w, "  Spell Save DC: %d | Spell Attack: %s\n", sc.SaveDC, engine.FormatModifier(sc.AttackBonus))
		renderSlots(w, sc.Slots)
		renderList(w, "Spells Known", sc.SpellsKnown)
		renderList(w, "Spells Prepared", sc.SpellsPrepared)
	}

	renderList(w, "\nFEATURES & TRAITS", sheet.FeaturesAndTraits)
	renderList(w, "\nCUSTOM ABILITIES", sheet.CustomAbilities)
	renderList(w, "\nLANGUAGES", sheet.Languages)
	renderList(w, "\nOTHER PROFICIENCIES", sheet.OtherProficiencies)
	renderList(w, "\nCONDITIONS", sheet.Conditions)
	renderList(w, "\nCOMBAT NOTES", sheet.CombatNotes)

	fmt.Fprintf(w, "\nInventory: %d item(s)\n%s\n", sheet.InventoryCount, rule)
}

func renderAttacks(w io.Writer, a engine.AttackBonuses) {
	fmt.Fprintf(w, "  Melee: %s to hit, %s damage\n", engine.FormatModifier(a.Melee), engine.FormatModifier(a.StrengthDamage))
	fmt.Fprintf(w, "  Ranged: %s to hit, %s damage\n", engine.FormatModifier(a.Ranged), engine.FormatModifier(a.DexterityDamage))
	fmt.Fprintf(w, "  Finesse: %s to hit, %s damage\n", engine.FormatModifier(a.Finesse), engine.FormatModifier(a.DexterityDamage))
	if a.SpellAttack != nil {
		fmt.Fprintf(w, "  Spell Attack: %s\n", engine.FormatModifier(*a.SpellAttack))
	}
}

// renderSlots skips levels with no slots
func renderSlots(w io.Writer, slots []engine.SpellSlotLine) {
	shown := false
	for _, slot := range slots {
		if slot.Total == 0 {
			continue
		}
		if !shown {
			fmt.Fprintln(w, "  Spell Slots:")
			shown = true
		}
		fmt.Fprintf(w, "    %s: %d/%d remaining\n", slot.Level, slot.Remaining, slot.Total)
	}
	if !shown {
		fmt.Fprintln(w, "  Spell Slots: none")
	}
}

func renderList(w io.Writer, title string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(w, "%s\n", title)
	for _, v := range values {
		fmt.Fprintf(w, "  • %s\n", v)
	}
}

func formatHitPoints(hp dnd5e.HitPointState) string {
	if hp.Temporary > 0 {
		return fmt.Sprintf("%d/%d (+%d temp)", hp.Current, hp.Maximum, hp.Temporary)
	}
	return fmt.Sprintf("%d/%d", hp.Current, hp.Maximum)
}

func proficiencyMark(proficient bool) string {
	if proficient {
		return "●"
	}
	return "○"
}

// RenderInventory writes one line per stack
func RenderInventory(w io.Writer, items []dnd5e.InventoryItem) {
	if len(items) == 0 {
		fmt.Fprintln(w, "Inventory is empty.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tQTY\tWEIGHT\tVALUE (GP)\tRARITY\tTYPE\t")
	for _, item := range items {
		name := item.Name
		if item.Magical {
			name += " ✦"
		}
		if item.Attuned {
			name += " (attuned)"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s lb\t%s\t%s\t%s\t\n",
			name, item.Quantity, formatNumber(item.TotalWeight()), formatNumber(item.TotalValue()), item.Rarity, item.ItemType)
	}
	_ = tw.Flush()
}

// RenderItem writes the full details of one stack
func RenderItem(w io.Writer, item dnd5e.InventoryItem) {
	fmt.Fprintf(w, "%s (x%d)\n", item.Name, item.Quantity)
	fmt.Fprintf(w, "  Type: %s | Rarity: %s\n", item.ItemType, item.Rarity)
	fmt.Fprintf(w, "  Weight: %s lb each, %s lb total\n", formatNumber(item.Weight), formatNumber(item.TotalWeight()))
	fmt.Fprintf(w, "  Value: %s gp each, %s gp total\n", formatNumber(item.ValueGP), formatNumber(item.TotalValue()))
	if item.Magical {
		fmt.Fprintf(w, "  Magical: yes | Attuned: %t\n", item.Attuned)
	}
	if item.Description != "" {
		fmt.Fprintf(w, "  %s\n", item.Description)
	}
}

// RenderSummary writes the inventory totals
func RenderSummary(w io.Writer, summary *inventory.Summary) {
	fmt.Fprintf(w, "Items: %d\n", summary.ItemCount)
	fmt.Fprintf(w, "Total weight: %s lb\n", formatNumber(summary.TotalWeight))
	fmt.Fprintf(w, "Total value: %s gp\n", formatNumber(summary.TotalValue))
	fmt.Fprintf(w, "Magical items: %d (%d attuned)\n", summary.MagicalCount, summary.AttunedCount)
}

// formatNumber drops trailing zeros: 13.50 -> 13.5, 2.00 -> 2
func formatNumber(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
