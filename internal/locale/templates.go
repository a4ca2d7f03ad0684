package locale

// TemplateKey names a canned response in the per-locale template table.
type TemplateKey string

const (
	TplGreeting       TemplateKey = "greeting"
	TplGoodbye        TemplateKey = "goodbye"
	TplClarify        TemplateKey = "clarify"
	TplApology        TemplateKey = "apology"
	TplEmergency      TemplateKey = "emergency"
	TplLowConfidence  TemplateKey = "low_confidence"
	TplAskService     TemplateKey = "ask_service"
	TplAskDate        TemplateKey = "ask_date"
	TplAskTime        TemplateKey = "ask_time"
	TplAskPatientInfo TemplateKey = "ask_patient_info"
	TplConfirm        TemplateKey = "confirm"
	TplBookingDone    TemplateKey = "booking_done"
	TplBookingFailed  TemplateKey = "booking_failed"
	TplCancelled      TemplateKey = "cancelled"
	TplSearchIntro    TemplateKey = "search_intro"
	TplNoResults      TemplateKey = "no_results"
)

var templates = map[string]map[TemplateKey]string{
	EnglishGH: {
		TplGreeting:       "Hello and welcome to Accra Heights Hospital. How can I help you today?",
		TplGoodbye:        "Thank you for visiting Accra Heights Hospital. Take care!",
		TplClarify:        "I'm not sure I understood that. You can ask about our services, doctors, visiting hours, or book an appointment.",
		TplApology:        "I'm sorry, I'm having trouble answering right now. Please try again shortly or call the front desk on 030 222 0000.",
		TplEmergency:      "If this is a medical emergency, please call 193 or come straight to our 24-hour Emergency Department on Liberation Road. Do not wait for an online reply.",
		TplLowConfidence:  "I didn't quite catch that. Could you repeat or type your request?",
		TplAskService:     "Which service or department would you like to book? For example cardiology, dermatology, or a general consultation.",
		TplAskDate:        "What date works for you? You can say something like \"next Tuesday\" or \"2026-09-15\".",
		TplAskTime:        "What time of day suits you best?",
		TplAskPatientInfo: "Almost done. Please share your full name, email, and phone number so we can confirm the booking.",
		TplConfirm:        "Here is your booking summary:\n%s\nReply \"confirm\" to submit or \"cancel\" to start over.",
		TplBookingDone:    "Your appointment is booked! Confirmation number: %s. We've sent the details to your email.",
		TplBookingFailed:  "We couldn't submit your booking: %s. Your details are saved, so you can try confirming again.",
		TplCancelled:      "No problem, I've cancelled that booking. Let me know if you'd like to start again.",
		TplSearchIntro:    "Here's what I found on our site:",
		TplNoResults:      "I couldn't find anything about that on our site, but our front desk can help on 030 222 0000.",
	},
	TwiGH: {
		TplGreeting:       "Akwaaba! Wo ahoɔfɛ ne Accra Heights Ayaresabea. Mɛtumi aboa wo sɛn?",
		TplGoodbye:        "Medaase sɛ wobaa Accra Heights Ayaresabea. Nante yie!",
		TplClarify:        "Mente aseɛ yie. Wubetumi abisa yɛn nnwuma, adɔkotafoɔ, berɛ a yɛbue, anaa wobɛtumi abɔ nhyiamu.",
		TplApology:        "Kafra, merentumi mmua wo seesei. Sɔ hwɛ bio akyire yi anaa frɛ yɛn wɔ 030 222 0000.",
		TplEmergency:      "Sɛ ɛyɛ prɛko a, frɛ 193 anaa bra yɛn Prɛko Dwumadibea a ɛwɔ Liberation Road no ntɛm ara. Ntwɛn online mmuaeɛ.",
		TplLowConfidence:  "Mante deɛ wokaeɛ no yie. Mesrɛ wo, ka bio anaa kyerɛw no.",
		TplAskService:     "Dwumadie bɛn na wopɛ sɛ wobɔ ho nhyiamu? Ebia akoma ho ayaresa, honam ani ho ayaresa, anaa nhwehwɛmu foforɔ.",
		TplAskDate:        "Da bɛn na ɛyɛ ma wo?",
		TplAskTime:        "Berɛ bɛn na ɛfata wo?",
		TplAskPatientInfo: "Aka kakra. Mesrɛ wo, ma yɛn wo din, wo email ne wo telefon nɔma na yɛasi nhyiamu no so dua.",
		TplConfirm:        "Wo nhyiamu ho nsɛm nie:\n%s\nKyerɛw \"confirm\" na woasi so dua anaa \"cancel\" na woasan afiti aseɛ.",
		TplBookingDone:    "Wɔabɔ wo nhyiamu! Nɔma a ɛsi so dua ne: %s. Yɛde nsɛm no akɔ wo email so.",
		TplBookingFailed:  "Yantumi amfa wo nhyiamu no ankɔ: %s. Wo nsɛm no da so wɔ hɔ, enti wubetumi asɔ ahwɛ bio.",
		TplCancelled:      "Ɛnyɛ hwee, matwa nhyiamu no mu. Ka kyerɛ me sɛ wopɛ sɛ wofiti aseɛ bio a.",
		TplSearchIntro:    "Nea mahunu wɔ yɛn site so nie:",
		TplNoResults:      "Manhunu biribiara a ɛfa ho wɔ yɛn site so, nanso yɛn front desk bɛtumi aboa wo wɔ 030 222 0000.",
	},
}

// Template returns the canned text for a key in the given locale. Unknown
// locales and keys fall back to the English table, so callers always get a
// non-empty reply.
func Template(localeCode string, key TemplateKey) string {
	table, ok := templates[Normalize(localeCode)]
	if !ok {
		table = templates[EnglishGH]
	}
	if text, ok := table[key]; ok && text != "" {
		return text
	}
	return templates[EnglishGH][key]
}
