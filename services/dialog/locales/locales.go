// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package locales provides the two fixed string sets used to render
// system messages: a neutral one and an informal one. There is no
// wider internationalization; the set is chosen once per session from
// the Informal config flag.
package locales

// Strings holds every message template for one tone. Placeholders are
// filled with fmt.Sprintf by the dialog manager; the comment on each
// field lists the argument order.
type Strings struct {
	Greeting string

	// Missing-info prompts, asked in fixed precedence order.
	AskPriceRange string
	AskArea       string
	AskFood       string
	AskOther      string

	SuggestionInitial  string // name, pricerange, food, area
	AskAdditionalReqs  string
	NoSuggestion       string
	SuggestionDetails  string // crowdedness, length_of_stay, food_quality
	InferenceOutcome   string // consequent, reason
	NoInferenceMatch   string

	ConfirmationInitial  string
	ConfirmPriceRange    string // joined priceranges
	ConfirmPriceRangeAny string
	ConfirmArea          string // joined areas
	ConfirmAreaAny       string
	ConfirmFood          string // joined foods

	RequestInitial  string // name
	RequestPhone    string // phone
	RequestAddress  string // address
	RequestPostcode string // postcode
	RequestUnknown  string

	TypoConfirm string // joined typo words

	FoodListHeader    string
	Goodbye           string
	YoureWelcome      string
	MisunderstandPref string
	NoSuggestionYet   string
	DidNotUnderstand  string
	AskConsequent     string // joined consequents
	SettingsLocked    string
}

// Neutral returns the default string set.
func Neutral() *Strings {
	return &Strings{
		Greeting: "Hello! Welcome to the TableTalk restaurant recommendation system. To change your settings, type -config at any time.",

		AskPriceRange: "What price range do you prefer? (cheap, moderate or expensive)",
		AskArea:       "What part of town would you like to eat in? (north, south, east, west or centre)",
		AskFood:       "What type of food would you like? Type 'foodlist' to see all options.",
		AskOther:      "I don't understand. Could you rephrase that?",

		SuggestionInitial: "%s is a nice %s restaurant serving %s food in the %s of town.",
		AskAdditionalReqs: "You can also ask for 'additional requirements'.",
		NoSuggestion:      "Sorry, there are no more restaurants matching your preferences. You can change a preference or say goodbye.",
		SuggestionDetails: "Its crowdedness is usually '%s', the usual length of stay is '%s', and the food quality is '%s'.",
		InferenceOutcome:  "It's classified as '%s' because %s.",
		NoInferenceMatch:  "Sorry, there are no suggestions given your additional requirements.",

		ConfirmationInitial:  "Please confirm your preferences (yes/no):",
		ConfirmPriceRange:    "Price range: %s",
		ConfirmPriceRangeAny: "Any price range",
		ConfirmArea:          "Area: %s",
		ConfirmAreaAny:       "Any area",
		ConfirmFood:          "Food type: %s",

		RequestInitial:  "Here is the information for %s:",
		RequestPhone:    "phone number: %s",
		RequestAddress:  "address: %s",
		RequestPostcode: "postcode: %s",
		RequestUnknown:  "unknown",

		TypoConfirm: "I didn't recognize some words. Did you mean %s? (yes/no)",

		FoodListHeader:    "Here is a list of all possible food types:",
		Goodbye:           "Goodbye! Thanks for using our restaurant recommender.",
		YoureWelcome:      "You're welcome!",
		MisunderstandPref: "Sorry for misunderstanding - please provide your preferences again.",
		NoSuggestionYet:   "Sorry, I don't have a suggestion right now. Please provide more information about your preferences.",
		DidNotUnderstand:  "Sorry, I didn't quite get that. Could you repeat yourself?",
		AskConsequent:     "Please specify your additional requirement (%s):",
		SettingsLocked:    "Settings can only be changed when the session is created.",
	}
}

// Informal returns the casual string set.
func Informal() *Strings {
	return &Strings{
		Greeting: "Hey there! I'm TableTalk, let's find you somewhere to eat. Type -config whenever you want to tweak settings.",

		AskPriceRange: "How much do you want to spend? (cheap, moderate or expensive)",
		AskArea:       "Where in town do you want to go? (north, south, east, west or centre)",
		AskFood:       "What are you in the mood for? Type 'foodlist' if you want the full list.",
		AskOther:      "Hmm, I didn't get that. Try saying it another way?",

		SuggestionInitial: "How about %s? It's a %s place doing %s food over in the %s of town.",
		AskAdditionalReqs: "You can also hit me with 'additional requirements'.",
		NoSuggestion:      "Bad news, I'm out of places that match. Change something or say bye.",
		SuggestionDetails: "It's usually '%s', people tend to have a '%s' there, and the food is rated '%s'.",
		InferenceOutcome:  "I'd call it '%s' because %s.",
		NoInferenceMatch:  "Sorry, nothing fits those extra requirements.",

		ConfirmationInitial:  "Quick check, did I get this right? (yes/no)",
		ConfirmPriceRange:    "Price: %s",
		ConfirmPriceRangeAny: "Price: whatever works",
		ConfirmArea:          "Area: %s",
		ConfirmAreaAny:       "Area: anywhere's fine",
		ConfirmFood:          "Food: %s",

		RequestInitial:  "Here's what I've got for %s:",
		RequestPhone:    "phone: %s",
		RequestAddress:  "address: %s",
		RequestPostcode: "postcode: %s",
		RequestUnknown:  "no idea, sorry",

		TypoConfirm: "Not sure I caught that. Did you mean %s? (yes/no)",

		FoodListHeader:    "Here's everything on the menu, food-wise:",
		Goodbye:           "See you around, enjoy your meal!",
		YoureWelcome:      "No worries!",
		MisunderstandPref: "My bad - tell me your preferences again?",
		NoSuggestionYet:   "Nothing lined up yet - tell me a bit more about what you want.",
		DidNotUnderstand:  "Sorry, that went over my head. One more time?",
		AskConsequent:     "Anything extra you need? (%s):",
		SettingsLocked:    "Settings are locked in once the session starts, sorry.",
	}
}

// ForConfig picks the string set for a session.
func ForConfig(informal bool) *Strings {
	if informal {
		return Informal()
	}
	return Neutral()
}
