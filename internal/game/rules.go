// internal/game/rules.go
package game

import "fmt"

// Ruleset holds the house rules for a game.
//
// A game keeps a pointer to its Ruleset and reads it on every decision, so
// changes made mid-game apply from the next move on. NumberOfDecks is only
// consulted when the game is constructed.
type Ruleset struct {
	StartingHandSize int `json:"starting_hand_size"` // cards dealt to a player when they join
	NumberOfDecks    int `json:"number_of_decks"`    // physical decks shuffled together

	JumpIns      bool `json:"jump_ins"`       // allow exact-match plays out of turn
	JumpInsStack bool `json:"jump_ins_stack"` // a jumped-in plus card adds to the running stack instead of resetting it

	Stacking                              bool `json:"stacking"`                                     // answer a plus card with another plus card
	StackPlusFoursOnPlusTwos              bool `json:"stack_plus_fours_on_plus_twos"`                // +4 may answer a +2
	StackAllPlusTwosOnPlusFours           bool `json:"stack_all_plus_twos_on_plus_fours"`            // any +2 may answer a +4
	StackColorMatchingPlusTwosOnPlusFours bool `json:"stack_color_matching_plus_twos_on_plus_fours"` // a +2 in the chosen color may answer a +4

	ForcePlay        bool `json:"force_play"`          // no voluntary draw while holding a playable card
	DrawUntilCanPlay bool `json:"draw_until_can_play"` // keep drawing until a playable card turns up

	SevenSwapHands    bool `json:"seven_swap_hands"`     // a 7 swaps hands with a chosen player
	ForceSevenSwap    bool `json:"force_seven_swap"`     // the 7 player may not pick themselves
	JumpInDuringSeven bool `json:"jump_in_during_seven"` // jump-ins allowed while a swap target is pending

	ZeroRotateHands  bool `json:"zero_rotate_hands"`   // a 0 rotates every hand one seat
	ForceZeroRotate  bool `json:"force_zero_rotate"`   // the 0 player may not decline the rotation
	JumpInDuringZero bool `json:"jump_in_during_zero"` // jump-ins allowed while the rotation choice is pending
}

// DefaultRuleset returns the standard rules: seven card hands, one deck,
// forced play and draw until playable.
func DefaultRuleset() *Ruleset {
	return &Ruleset{
		StartingHandSize: 7,
		NumberOfDecks:    1,
		ForcePlay:        true,
		DrawUntilCanPlay: true,
	}
}

// Validate checks the numeric rules.
func (rules *Ruleset) Validate() error {
	if rules.NumberOfDecks < 1 {
		return fmt.Errorf("%w: number_of_decks must be 1 or more", ErrInvalidArgument)
	}
	if rules.StartingHandSize < 0 {
		return fmt.Errorf("%w: starting_hand_size must be non-negative", ErrInvalidArgument)
	}
	return nil
}

// Update will update the rules with the new rules provided.
// If a rule is not set or defined, it will be ignored, and the old value will persist.
// On error the receiver is left unchanged.
func (rules *Ruleset) Update(newRules map[string]interface{}) error {
	updated := *rules

	assignBool := func(field *bool, key string) error {
		if val, exists := newRules[key]; exists && val != nil {
			b, ok := val.(bool)
			if !ok {
				return fmt.Errorf("%w: invalid type for %s", ErrInvalidArgument, key)
			}
			*field = b
		}
		return nil
	}

	assignInt := func(field *int, key string, minVal int) error {
		if val, exists := newRules[key]; exists && val != nil {
			var n int
			// JSON numbers decode as float64
			switch v := val.(type) {
			case float64:
				n = int(v)
			case int:
				n = v
			case int64:
				n = int(v)
			default:
				return fmt.Errorf("%w: invalid type for %s", ErrInvalidArgument, key)
			}
			if n < minVal {
				return fmt.Errorf("%w: %s must be at least %d", ErrInvalidArgument, key, minVal)
			}
			*field = n
		}
		return nil
	}

	ints := []struct {
		field *int
		key   string
		min   int
	}{
		{&updated.StartingHandSize, "starting_hand_size", 0},
		{&updated.NumberOfDecks, "number_of_decks", 1},
	}
	for _, f := range ints {
		if err := assignInt(f.field, f.key, f.min); err != nil {
			return err
		}
	}

	bools := []struct {
		field *bool
		key   string
	}{
		{&updated.JumpIns, "jump_ins"},
		{&updated.JumpInsStack, "jump_ins_stack"},
		{&updated.Stacking, "stacking"},
		{&updated.StackPlusFoursOnPlusTwos, "stack_plus_fours_on_plus_twos"},
		{&updated.StackAllPlusTwosOnPlusFours, "stack_all_plus_twos_on_plus_fours"},
		{&updated.StackColorMatchingPlusTwosOnPlusFours, "stack_color_matching_plus_twos_on_plus_fours"},
		{&updated.ForcePlay, "force_play"},
		{&updated.DrawUntilCanPlay, "draw_until_can_play"},
		{&updated.SevenSwapHands, "seven_swap_hands"},
		{&updated.ForceSevenSwap, "force_seven_swap"},
		{&updated.JumpInDuringSeven, "jump_in_during_seven"},
		{&updated.ZeroRotateHands, "zero_rotate_hands"},
		{&updated.ForceZeroRotate, "force_zero_rotate"},
		{&updated.JumpInDuringZero, "jump_in_during_zero"},
	}
	for _, f := range bools {
		if err := assignBool(f.field, f.key); err != nil {
			return err
		}
	}

	*rules = updated
	return nil
}

// ParseRules converts a map of rules to a Ruleset on top of current. It will ensure the types are valid.
func ParseRules(newRules map[string]interface{}, current Ruleset) (Ruleset, error) {
	rules := current
	err := rules.Update(newRules)
	return rules, err
}
