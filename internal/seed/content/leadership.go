package content

import "ms-content/internal/schema"

func Leadership() []*schema.LeaderInsert {
	return []*schema.LeaderInsert{
		{
			Name:          "Dr. Meera Nair",
			Role:          "Founder and Chairperson",
			Bio:           text("Meera founded the organisation after two decades as a rural physician and still leads its health work."),
			ImageURL:      text("/images/team/meera-nair.jpg"),
			Qualification: text("MBBS, MD (Community Medicine)"),
			Experience:    text("25 years in public health"),
			Email:         text("meera@ashaseva.org"),
			LinkedIn:      text("https://www.linkedin.com/in/meera-nair"),
			OrderIndex:    order(1),
		},
		{
			Name:          "Rajesh Kumar",
			Role:          "Executive Director",
			Bio:           text("Rajesh oversees programmes and partnerships across all field locations."),
			ImageURL:      text("/images/team/rajesh-kumar.jpg"),
			Qualification: text("MA (Social Work)"),
			Experience:    text("18 years in the development sector"),
			Email:         text("rajesh@ashaseva.org"),
			LinkedIn:      text("https://www.linkedin.com/in/rajesh-kumar"),
			OrderIndex:    order(2),
		},
		{
			Name:          "Anita Desai",
			Role:          "Director of Programs",
			Bio:           text("Anita designs and monitors the education and women empowerment programmes."),
			ImageURL:      text("/images/team/anita-desai.jpg"),
			Qualification: text("M.Ed, PhD (Education)"),
			Experience:    text("15 years in education policy"),
			Email:         text("anita@ashaseva.org"),
			OrderIndex:    order(3),
		},
		{
			Name:          "Farhan Sheikh",
			Role:          "Finance Director",
			Bio:           text("Farhan manages budgets, audits and donor reporting."),
			ImageURL:      text("/images/team/farhan-sheikh.jpg"),
			Qualification: text("Chartered Accountant"),
			Experience:    text("12 years in nonprofit finance"),
			Email:         text("farhan@ashaseva.org"),
			OrderIndex:    order(4),
		},
		{
			Name:          "Lakshmi Iyer",
			Role:          "Head of Community Outreach",
			Bio:           text("Lakshmi leads volunteer networks and village partnerships."),
			ImageURL:      text("/images/team/lakshmi-iyer.jpg"),
			Qualification: text("MSW"),
			Experience:    text("10 years in community mobilisation"),
			OrderIndex:    order(5),
		},
	}
}
