package services

import (
	"loan-portal-api/models"
	"loan-portal-api/utils"
)

// FormValue is one entry of the assembled multipart payload: either a plain
// string or a file part. Exactly one of the two is meaningful.
type FormValue struct {
	Value string
	File  *models.Attachment
}

// Payload is the flat multipart map sent to the loan service, with Keys
// preserving wire order.
type Payload struct {
	Keys   []string
	Fields map[string]FormValue
}

func (p *Payload) add(key string, v FormValue) {
	if _, exists := p.Fields[key]; !exists {
		p.Keys = append(p.Keys, key)
	}
	p.Fields[key] = v
}

func applicantValue(profile models.ApplicantProfile, field string) string {
	switch field {
	case "fullName":
		return profile.Name
	case "nationalId":
		return profile.NationalID
	case "idExpiryDate":
		return profile.IDExpiryDate
	case "phone":
		return profile.Phone
	case "email":
		return profile.Email
	}
	return ""
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// AssemblePayload is the pure transformation from the draft aggregate to the
// external multipart field map:
//   - every registry field maps to its fixed external key;
//   - booleans serialize as the literal strings "true"/"false";
//   - selects still holding the sentinel placeholder map to "";
//   - every file slot key is always present, the file or an empty string;
//   - detail fields whose toggle is off are sent empty, except the
//     other-commitments detail which carries a fixed localized phrase;
//   - dates leave in canonical YYYY-MM-DD form when recognizable.
func AssemblePayload(draft *models.LoanDraft, locale string) *Payload {
	payload := &Payload{Fields: make(map[string]FormValue)}

	for _, key := range models.FieldOrder() {
		spec := models.FieldRegistry[key]

		switch spec.Kind {
		case models.FieldBool:
			value := draft.Flags[key]
			if !draft.Disclosed(key) {
				value = false
			}
			payload.add(spec.External, FormValue{Value: boolString(value)})

		case models.FieldFile:
			if file := draft.Files[key]; file != nil {
				payload.add(spec.External, FormValue{File: file})
			} else {
				payload.add(spec.External, FormValue{Value: ""})
			}

		default:
			var value string
			if spec.ReadOnly {
				value = applicantValue(draft.Applicant, key)
			} else {
				value = draft.Values[key]
			}

			if !draft.Disclosed(key) {
				value = ""
			}
			if key == "otherCommitmentsDetails" && !draft.Flags["hasOtherCommitments"] {
				value = utils.T(locale, utils.MsgNoOtherCommitments)
			}
			if spec.Kind == models.FieldSelect && value == models.SelectSentinel {
				value = ""
			}
			if spec.Kind == models.FieldDate {
				value = utils.NormalizeISODate(value)
			}
			payload.add(spec.External, FormValue{Value: value})
		}
	}

	return payload
}
