package banner

// SamplePayload returns the built-in payload used to seed a fresh install and
// by the dev reset endpoint.
func SamplePayload() []byte {
	return []byte(samplePayload)
}

const samplePayload = `[
  {"id": "welcome", "title": "Welcome to Your Benefits", "displayStyle": "banner", "hasNavigationArrow": true,
   "route": "/home",
   "elements": {"description": {"value": "See what your plan covers this year."}, "icon": {"value": "heart.text.square"}}},
  {"id": "wellness-rewards", "title": "Wellness Rewards", "actionText": "Start earning", "displayStyle": "banner",
   "elements": {"description": {"value": "Earn points for healthy habits."}, "icon": {"value": "figure.walk"}}},
  {"id": "dental-checkup", "title": "Dental Checkup Reminder", "displayStyle": "banner",
   "elements": {"description": {"value": "Two cleanings a year are covered in full."}, "icon": {"value": "mouth"}}},
  {"id": "go-paperless", "title": "Go Paperless", "actionText": "Switch now", "displayStyle": "card",
   "elements": {"description": {"value": "Get plan documents in the app instead of the mail."}, "icon": {"value": "doc.text"}}},
  {"id": "commonly-used", "title": "Commonly Used Services", "displayStyle": "list", "hasNavigationArrow": true,
   "elements": {"icon": {"value": "list.bullet"}}},
  {"id": "understand-your-plan", "title": "Understand Your Plan", "displayStyle": "list",
   "elements": {"description": {"value": "Deductibles, copays and networks explained."}, "icon": {"value": "questionmark.circle"}}}
]`
