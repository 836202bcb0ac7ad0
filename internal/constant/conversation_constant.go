package constant

const (
	ChatMessageRoleUser   = "user"
	ChatMessageRoleModel  = "model"
	ChatMessageRoleSystem = "system"
)

// Scripted copy for the Title Tom widget. Kept in one place so the engine
// stays pure control flow.
const (
	GreetingLine1 = "Hey there! I'm Title Tom."
	GreetingLine2 = "I'm here to help you navigate the confusing world of titles."
	GreetingLine3 = "Are you looking for general title information/instructions, or do you have a vehicle title issue with one of our services like SHiFT, Car Donation Wizard, or You Call We Haul?"

	QuestionName  = "What's your Name?"
	QuestionPhone = "What's your Phone Number?"
	QuestionState = "Please type your state of residence (e.g., Alabama, CA, etc.):"

	PersonalizedPrefixFormat = "Nice to meet you, %s. "

	MsgGeneralIntro     = "Great! Let's figure out your state of residence to get started."
	MsgIssueIntro       = "Got it! Before we dive in, would you like me to check if we already have a record of your vehicle?"
	MsgRecordCheckEmail = "Please enter your email address so I can check for a record on file."
	MsgRecordSkip       = "No problem! Let's figure out your state of residence."

	MsgInvalidEmail     = "Please enter a valid email address."
	MsgNoRecord         = "No record found for that email. No worries, let's continue manually."
	MsgLookupFailed     = "Something went wrong while checking your record. Let's continue manually."
	MsgCodeSentFormat   = "We've sent a 4-digit code to the email address you provided. Please type that code here to verify access (DEMO CODE: %s)."
	MsgCodeSent         = "We've sent a 4-digit code to the email address you provided. Please type that code here to verify access."
	MsgCodeRetry        = "That code is incorrect. Please try entering the 4-digit code again."
	MsgRecordLost       = "Sorry, your record isn't available anymore. Let's proceed manually."
	MsgSummaryFormat    = "It looks like your %s %s %s is registered in %s. Is this still accurate?"
	MsgStateUseFormat   = "Awesome. I'll use your state of %s to pull relevant info."
	MsgStatusFormat     = "Based on our records regarding your profile, your current title status shows %s."
	MsgRemedyFormat     = "To address this, here's what I recommend: %s"
	MsgNoRemedy         = "I don't have a specific remedy on file. Let's continue."
	MsgFormsFoundFormat = "I noticed your remedy mentions the following form(s): %s. Would you like me to provide links to these forms?"
	MsgFormLinkFormat   = "%s: %s"
	MsgFormsDeclined    = "No problem. We can continue without the forms for now."
	MsgStateUpdate      = "No worries, let's update your state of residence."

	MsgStateMenuFormat = "Perfect. I'll pull all the information I can regarding %s Title Information. Here are some of the routes we can take:"

	MsgAIIntro             = "Sure! What would you like to ask me about titles?"
	MsgAssistantFallback   = "Sorry, I couldn't get a response. Please try asking again in a moment."
	MsgFormDownloadFormat  = "You can download the %s here: %s"
	MsgChooseOption        = "Please choose one of the options above so we can continue."
)

// Option identifiers. These are the stable dispatch ids the widget posts
// back; labels are presentation only.
const (
	OptionIntroGeneral = "intro.general"
	OptionIntroIssue   = "intro.issue"

	OptionRecordCheck = "record.check"
	OptionRecordSkip  = "record.skip"

	OptionConfirmYes = "confirm.yes"
	OptionConfirmNo  = "confirm.no"

	OptionFormsYes = "forms.yes"
	OptionFormsNo  = "forms.no"

	OptionTopicSign     = "topic.sign"
	OptionTopicAsk      = "topic.ask"
	OptionTopicMissing  = "topic.missing"
	OptionTopicDeceased = "topic.deceased"
	OptionTopicSalvage  = "topic.salvage"
	OptionTopicLien     = "topic.lien"
)

const (
	LabelIntroGeneral = "General Title Help"
	LabelIntroIssue   = "Problem with Vehicle Service Title Issue"
	LabelRecordCheck  = "Record Check"
	LabelRecordSkip   = "Skip For Now"
	LabelConfirmYes   = "Yes, that's correct"
	LabelConfirmNo    = "No, that's outdated"
	LabelFormsYes     = "Yes"
	LabelFormsNo      = "No"

	LabelTopicSign     = "How to Sign My Title"
	LabelTopicAsk      = "Ask Me Anything"
	LabelTopicMissing  = "No Title or Missing Title"
	LabelTopicDeceased = "How to Get Title for Deceased Owner"
	LabelTopicSalvage  = "Applying for Salvage/Nonrepairable Titles"
	LabelTopicLien     = "Lien Release"
)

// TopicContent holds the static informational responses for the topic grid.
// Values are rich content (the widget renders basic markup).
var TopicContent = map[string]string{
	OptionTopicSign: `When signing your Alabama title:
- Seller signs and prints their name exactly as it appears on the front of the title.
- Buyer signs and prints in the "purchaser" section.
- Record the odometer reading at the time of sale.
- Do not use white-out or cross anything out; errors usually require an affidavit of correction (MVT-5-7).`,
	OptionTopicMissing: `No title or missing title?
- If the vehicle was last titled in your name, apply for a replacement with form MVT-12-1 ($15 fee, 2-4 week turnaround).
- If the title was never in your name, you may need a power of attorney (MVT-5-13) from the last titled owner.
- Vehicles 35 years or older are exempt from Alabama title requirements.`,
	OptionTopicDeceased: `When the owner of the vehicle is deceased:
- If the estate went through probate, the executor signs with letters testamentary.
- Without probate, Alabama generally requires a next-of-kin affidavit along with the death certificate.
- A power of attorney (MVT-5-13) cannot be used on behalf of a deceased person.`,
	OptionTopicSalvage: `Interested in applying for a salvage or nonrepairable title?
- Vehicles 35 years or older are EXEMPT.
- $15 application fee.
- Turnaround: 2-4 weeks.
- Use the MVT-41-1 application.`,
	OptionTopicLien: `Lien releases:
- The lienholder must sign off on the title or issue a separate lien release letter.
- If the lender no longer exists, contact the Alabama Department of Revenue for an indemnity process.
- Keep a copy of the release with your title paperwork; duplicates often require it.`,
}

// DefaultVerificationCode is the demo stand-in for a real one-time passcode.
const DefaultVerificationCode = "0000"

// AssistantSystemPrompt mirrors the proxy's persona instructions.
const AssistantSystemPrompt = `You are a professional title specialist for the state of Alabama.
Only answer questions within your knowledge base unless instructed otherwise.
Respond in a helpful, concise manner.
Do not fabricate information.`
