package naming

// Reference sets of names Salesforce knows natively. Names in these sets
// never receive the custom marker on forward translation. Loaded once,
// read-only thereafter.

var standardObjects = toSet([]string{
	"Account",
	"AccountContactRole",
	"Asset",
	"Attachment",
	"Campaign",
	"CampaignMember",
	"Case",
	"CaseComment",
	"Contact",
	"ContentDocument",
	"ContentVersion",
	"Contract",
	"Document",
	"Event",
	"Folder",
	"Group",
	"GroupMember",
	"Idea",
	"Lead",
	"Note",
	"Opportunity",
	"OpportunityContactRole",
	"OpportunityLineItem",
	"Organization",
	"Pricebook2",
	"PricebookEntry",
	"Product2",
	"Profile",
	"Queue",
	"RecordType",
	"Solution",
	"Task",
	"User",
	"UserRole",
})

var systemFields = toSet([]string{
	"Id",
	"Name",
	"Type",
	"OwnerId",
	"CreatedById",
	"CreatedDate",
	"LastModifiedById",
	"LastModifiedDate",
	"LastActivityDate",
	"LastReferencedDate",
	"LastViewedDate",
	"SystemModstamp",
	"IsDeleted",
	"RecordTypeId",
	"CurrencyIsoCode",
	"Description",
})

// IsStandardObject reports whether name is a natively known object.
func IsStandardObject(name string) bool { return standardObjects[name] }

// IsSystemField reports whether name is a vendor-managed system field.
func IsSystemField(name string) bool { return systemFields[name] }

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
