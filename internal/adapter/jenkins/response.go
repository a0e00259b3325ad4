package jenkins

import "encoding/json"

type jobResponse struct {
	FullDisplayName string          `json:"fullDisplayName"`
	URL             string          `json:"url"`
	FirstBuild      *buildRef       `json:"firstBuild"`
	Builds          []buildResponse `json:"builds"`
}

type buildRef struct {
	Number int `json:"number"`
}

type buildResponse struct {
	Number      int               `json:"number"`
	URL         string            `json:"url"`
	Result      string            `json:"result"`
	Building    bool              `json:"building"`
	Timestamp   int64             `json:"timestamp"`
	Duration    int64             `json:"duration"`
	DisplayName string            `json:"displayName"`
	Description string            `json:"description"`
	Actions     []json.RawMessage `json:"actions"`
	ChangeSets  []changeSet       `json:"changeSets"`
	Culprits    []person          `json:"culprits"`
}

type action struct {
	Class  string `json:"_class"`
	Causes []struct {
		ShortDescription string `json:"shortDescription"`
	} `json:"causes"`
	TotalCount *int `json:"totalCount"`
	FailCount  *int `json:"failCount"`
	SkipCount  *int `json:"skipCount"`
}

type changeSet struct {
	Items []struct {
		Author person `json:"author"`
	} `json:"items"`
}

type person struct {
	FullName string `json:"fullName"`
}
